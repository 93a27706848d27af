package validator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/helpers"
	"github.com/MinterTeam/restaking-explorer/models"
)

const (
	slashProbability  = 0.3
	slashWindow       = 60 * 24 * time.Hour
	MinApy            = 5
	MaxApy            = 20
	minStake          = 1000
	stakeSpread       = 10000
	minCommission     = 1
	commissionSpread  = 10
	maxSlashAmount    = 100
	operatorIdPattern = "operator_%d"
)

// Repository produces synthetic validator records.
// It stands in for an indexer and keeps no state between calls.
type Repository struct {
	now func() time.Time
}

func NewRepository() *Repository {
	return &Repository{now: time.Now}
}

// WithClock replaces the time source, used by tests
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

func (r *Repository) GenerateValidators() []*models.ValidatorRecord {
	operators := address.OperatorAddresses()
	validators := make([]*models.ValidatorRecord, len(operators))
	for i, operator := range operators {
		validators[i] = &models.ValidatorRecord{
			OperatorAddress:     operator,
			OperatorID:          fmt.Sprintf(operatorIdPattern, i+1),
			TotalDelegatedStake: helpers.RandomAmount(minStake, stakeSpread, 2),
			SlashEvents:         r.generateSlashHistory(),
			Status:              helpers.RandomItem(models.ValidatorStatuses),
			CommissionPct:       helpers.RandomAmount(minCommission, commissionSpread, 1),
			ApyPct:              RandomApy(),
		}
	}
	return validators
}

func (r *Repository) generateSlashHistory() []*models.SlashEvent {
	events := make([]*models.SlashEvent, 0, 1)
	if rand.Float64() >= slashProbability {
		return events
	}
	return append(events, &models.SlashEvent{
		Timestamp:       helpers.FormatTimestamp(helpers.RandomPastTime(r.now(), slashWindow)),
		Amount:          helpers.RandomAmount(0, maxSlashAmount, 2),
		Reason:          helpers.RandomItem(models.SlashReasons),
		TransactionHash: address.RandomHash(),
	})
}

// RandomApy returns a yield in the [MinApy, MaxApy] range with two places
func RandomApy() string {
	return helpers.RandomAmount(MinApy, MaxApy-MinApy, 2)
}
