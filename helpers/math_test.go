package helpers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumDecimalStrings(t *testing.T) {
	sum, err := SumDecimalStrings("10.00", "20.00")
	require.NoError(t, err)
	assert.Equal(t, "30.00", sum.StringFixed(2))

	sum, err = SumDecimalStrings()
	require.NoError(t, err)
	assert.True(t, sum.IsZero())

	sum, err = SumDecimalStrings("0.1", "0.2")
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("0.3")))

	_, err = SumDecimalStrings("1", "x")
	assert.Error(t, err)
}

func TestRandomAmount(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := decimal.RequireFromString(RandomAmount(10, 100, 2))
		require.True(t, v.GreaterThanOrEqual(decimal.NewFromInt(10)))
		require.True(t, v.LessThanOrEqual(decimal.NewFromInt(110)))
		require.Equal(t, int32(-2), v.Exponent())
	}
}

func TestRandomItem(t *testing.T) {
	list := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, list, RandomItem(list))
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 9, 8, 7, 6, 5_000_000, time.FixedZone("UTC+3", 3*3600))
	assert.Equal(t, "2024-03-09T05:07:06.005Z", FormatTimestamp(ts))
}

func TestRandomPastTime(t *testing.T) {
	now := time.Now()
	for i := 0; i < 100; i++ {
		ts := RandomPastTime(now, time.Hour)
		require.False(t, ts.After(now))
		require.True(t, ts.After(now.Add(-time.Hour)))
	}
	assert.Equal(t, now, RandomPastTime(now, 0))
}
