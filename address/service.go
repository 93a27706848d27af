package address

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
)

// Length of a 0x-prefixed hex address
const Length = 2 + 2*common.AddressLength

var ErrInvalidAddressFormat = errors.New("invalid address format")

var sampleAddresses = []string{
	"0x1234567890123456789012345678901234567890",
	"0x2345678901234567890123456789012345678901",
	"0x3456789012345678901234567890123456789012",
	"0x4567890123456789012345678901234567890123",
	"0x5678901234567890123456789012345678901234",
}

var operatorAddresses = []string{
	"0xabc1234567890123456789012345678901234567",
	"0xdef2345678901234567890123456789012345678",
	"0x9876543210987654321098765432109876543210",
}

// Validate rejects empty addresses and anything shorter than a full hex address.
// Length is counted in characters. Content is not checked, lookups only need the length.
func Validate(address string) error {
	if address == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAddressFormat)
	}
	if utf8.RuneCountInString(address) < Length {
		return fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidAddressFormat, address, Length)
	}
	return nil
}

// Short returns address in 0x1234...7890 form
func Short(address string) string {
	runes := []rune(address)
	if len(runes) <= 10 {
		return address
	}
	return string(runes[:6]) + "..." + string(runes[len(runes)-4:])
}

// SampleAddresses returns wallets the mock data knows about
func SampleAddresses() []string {
	return append([]string(nil), sampleAddresses...)
}

// OperatorAddresses returns the fixed validator operator set
func OperatorAddresses() []string {
	return append([]string(nil), operatorAddresses...)
}

// RandomHash returns a random 0x-prefixed 32 byte hex string.
// Mock transaction hashes need no cryptographic source.
func RandomHash() string {
	var b [common.HashLength]byte
	for i := 0; i < len(b); i += 8 {
		binary.LittleEndian.PutUint64(b[i:], rand.Uint64())
	}
	return common.BytesToHash(b[:]).Hex()
}
