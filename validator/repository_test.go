package validator

import (
	"fmt"
	"testing"
	"time"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/helpers"
	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GenerateValidators(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepository().WithClock(func() time.Time { return now })

	for round := 0; round < 50; round++ {
		validators := repo.GenerateValidators()
		require.Len(t, validators, len(address.OperatorAddresses()))

		for i, v := range validators {
			assert.Equal(t, address.OperatorAddresses()[i], v.OperatorAddress)
			assert.Equal(t, fmt.Sprintf("operator_%d", i+1), v.OperatorID)
			assert.Contains(t, models.ValidatorStatuses, v.Status)

			apy, err := decimal.NewFromString(v.ApyPct)
			require.NoError(t, err)
			assert.True(t, apy.GreaterThanOrEqual(decimal.NewFromInt(MinApy)), "apy %s below range", v.ApyPct)
			assert.True(t, apy.LessThanOrEqual(decimal.NewFromInt(MaxApy)), "apy %s above range", v.ApyPct)

			stake, err := decimal.NewFromString(v.TotalDelegatedStake)
			require.NoError(t, err)
			assert.True(t, stake.GreaterThanOrEqual(decimal.NewFromInt(minStake)))

			commission, err := decimal.NewFromString(v.CommissionPct)
			require.NoError(t, err)
			assert.True(t, commission.GreaterThanOrEqual(decimal.NewFromInt(minCommission)))

			require.NotNil(t, v.SlashEvents)
			assert.LessOrEqual(t, len(v.SlashEvents), 1)
			for _, s := range v.SlashEvents {
				assert.Contains(t, models.SlashReasons, s.Reason)
				assert.Len(t, s.TransactionHash, 66)
				ts, err := time.Parse(helpers.TimestampLayout, s.Timestamp)
				require.NoError(t, err)
				assert.False(t, ts.After(now))
				assert.False(t, ts.Before(now.Add(-slashWindow)))
			}
		}
	}
}

func TestRandomApy(t *testing.T) {
	for i := 0; i < 1000; i++ {
		apy := decimal.RequireFromString(RandomApy())
		require.True(t, apy.GreaterThanOrEqual(decimal.NewFromInt(MinApy)))
		require.True(t, apy.LessThanOrEqual(decimal.NewFromInt(MaxApy)))
	}
}

func TestRepository_GenerateValidatorsSlashRate(t *testing.T) {
	repo := NewRepository()
	total, slashed := 0, 0
	for total < 3000 {
		for _, v := range repo.GenerateValidators() {
			total++
			if v.HasSlashHistory() {
				slashed++
			}
		}
	}

	rate := float64(slashed) / float64(total)
	assert.InDelta(t, slashProbability, rate, 0.05, "slashed %d of %d validators", slashed, total)
}
