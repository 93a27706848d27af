package reward

import (
	"time"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/helpers"
	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/MinterTeam/restaking-explorer/validator"
)

const Places = 4

const day = 24 * time.Hour

type shareTemplate struct {
	min, spread float64
	paidAgo     []time.Duration
}

// one template per rewarded operator, in operator order
var shareTemplates = []shareTemplate{
	{min: 10, spread: 50, paidAgo: []time.Duration{7 * day, 14 * day}},
	{min: 5, spread: 30, paidAgo: []time.Duration{3 * day, 10 * day}},
}

type Repository struct {
	now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// GenerateRewardSummary builds a reward breakdown for the wallet.
// The total is the exact sum of the breakdown.
func (r *Repository) GenerateRewardSummary(wallet string) (*models.RewardSummary, error) {
	if err := address.Validate(wallet); err != nil {
		return nil, err
	}

	now := r.now()
	operators := address.OperatorAddresses()
	shares := make([]*models.ValidatorRewardShare, len(shareTemplates))
	earned := make([]string, len(shareTemplates))
	for i, tpl := range shareTemplates {
		timestamps := make([]string, len(tpl.paidAgo))
		for j, ago := range tpl.paidAgo {
			timestamps[j] = helpers.FormatTimestamp(now.Add(-ago))
		}
		earned[i] = helpers.RandomAmount(tpl.min, tpl.spread, Places)
		shares[i] = &models.ValidatorRewardShare{
			ValidatorAddress: operators[i%len(operators)],
			RewardsEarned:    earned[i],
			RewardTimestamps: timestamps,
			ApyPct:           validator.RandomApy(),
		}
	}

	total, err := helpers.SumDecimalStrings(earned...)
	if err != nil {
		return nil, err
	}

	return &models.RewardSummary{
		WalletAddress:         wallet,
		TotalRewards:          total.StringFixed(Places),
		PerValidatorBreakdown: shares,
		LastUpdated:           helpers.FormatTimestamp(now),
	}, nil
}
