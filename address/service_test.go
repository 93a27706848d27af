package address

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		address string
		valid   bool
	}{
		{"empty", "", false},
		{"short", "0x12", false},
		{"one char short", "0x123456789012345678901234567890123456789", false},
		{"exact", "0x1234567890123456789012345678901234567890", true},
		{"multibyte shorter in characters", "0x" + strings.Repeat("é", 20), false},
		{"multibyte full length", "0x" + strings.Repeat("é", 40), true},
		{"longer", "0x1234567890123456789012345678901234567890ff", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.address)
			if c.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAddressFormat))
		})
	}
}

func TestFixedAddressesAreValid(t *testing.T) {
	for _, a := range append(SampleAddresses(), OperatorAddresses()...) {
		assert.Len(t, a, Length)
		assert.NoError(t, Validate(a))
	}
}

func TestSampleAddressesReturnsCopy(t *testing.T) {
	list := SampleAddresses()
	list[0] = "changed"
	assert.NotEqual(t, "changed", SampleAddresses()[0])
}

func TestShort(t *testing.T) {
	assert.Equal(t, "0x1234...7890", Short("0x1234567890123456789012345678901234567890"))
	assert.Equal(t, "0x12", Short("0x12"))
	assert.Equal(t, "0xéééé...éééé", Short("0x"+strings.Repeat("é", 20)))
}

func TestRandomHash(t *testing.T) {
	h := RandomHash()
	assert.Len(t, h, 66)
	assert.Equal(t, "0x", h[:2])
	assert.NotEqual(t, h, RandomHash())
	for i := 0; i < 100; i++ {
		assert.NotEqual(t, "0x"+strings.Repeat("0", 64), RandomHash())
	}
}
