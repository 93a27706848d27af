package stats

import (
	"errors"
	"fmt"

	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/shopspring/decimal"
)

// RewardEstimateFactor is an illustrative multiplier for the rough rewards estimate.
// It has no protocol meaning.
var RewardEstimateFactor = decimal.RequireFromString("0.25")

const Places = 2

var ErrNoValidators = errors.New("average apy is undefined without validators")

var hundred = decimal.NewFromInt(100)

func TotalRestaked(restakers []*models.RestakeRecord) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, r := range restakers {
		amount, err := decimal.NewFromString(r.AmountRestaked)
		if err != nil {
			return decimal.Zero, fmt.Errorf("restaker %s amount %q: %w", r.UserAddress, r.AmountRestaked, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

func AverageApy(validators []*models.ValidatorRecord) (decimal.Decimal, error) {
	if len(validators) == 0 {
		return decimal.Zero, ErrNoValidators
	}
	sum := decimal.Zero
	for _, v := range validators {
		apy, err := decimal.NewFromString(v.ApyPct)
		if err != nil {
			return decimal.Zero, fmt.Errorf("validator %s apy %q: %w", v.OperatorAddress, v.ApyPct, err)
		}
		sum = sum.Add(apy)
	}
	return sum.Div(decimal.NewFromInt(int64(len(validators)))), nil
}

func EstimateRewards(totalRestaked, averageApy decimal.Decimal) decimal.Decimal {
	return totalRestaked.Mul(averageApy.Div(hundred)).Mul(RewardEstimateFactor)
}

// Calculate derives the overview from both collections on every call.
// The estimate uses the rounded total, the same figure the overview shows.
func Calculate(restakers []*models.RestakeRecord, validators []*models.ValidatorRecord) (*models.Overview, error) {
	total, err := TotalRestaked(restakers)
	if err != nil {
		return nil, err
	}
	overview := &models.Overview{
		TotalRestaked:  total.StringFixed(Places),
		RestakerCount:  len(restakers),
		ValidatorCount: len(validators),
	}

	avg, err := AverageApy(validators)
	if errors.Is(err, ErrNoValidators) {
		return overview, nil
	}
	if err != nil {
		return nil, err
	}

	overview.AverageApy = avg.StringFixed(Places)
	overview.EstimatedTotalRewards = EstimateRewards(total.Round(Places), avg).StringFixed(Places)
	return overview, nil
}
