package helpers

import (
	"fmt"
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// SumDecimalStrings adds decimal strings without float rounding
func SumDecimalStrings(values ...string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, v := range values {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("error parse string %q to decimal: %w", v, err)
		}
		sum = sum.Add(amount)
	}
	return sum, nil
}

// RandomAmount returns a value uniformly drawn from [min, min+spread) formatted with fixed places
func RandomAmount(min, spread float64, places int32) string {
	return decimal.NewFromFloat(rand.Float64()*spread + min).StringFixed(places)
}

// RandomItem picks one element of a non-empty list
func RandomItem[T any](list []T) T {
	return list[rand.IntN(len(list))]
}
