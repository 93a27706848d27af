package restaker

import (
	"time"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/helpers"
	"github.com/MinterTeam/restaking-explorer/models"
)

const (
	MinAmount     = 10
	amountSpread  = 100
	restakeWindow = 30 * 24 * time.Hour
)

// Repository produces one synthetic restake position per sample wallet
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

func (r *Repository) GenerateRestakers() []*models.RestakeRecord {
	wallets := address.SampleAddresses()
	operators := address.OperatorAddresses()
	restakers := make([]*models.RestakeRecord, len(wallets))
	for i, wallet := range wallets {
		restakers[i] = &models.RestakeRecord{
			UserAddress:     wallet,
			AmountRestaked:  helpers.RandomAmount(MinAmount, amountSpread, 2),
			TargetValidator: operators[i%len(operators)],
			Timestamp:       helpers.FormatTimestamp(helpers.RandomPastTime(r.now(), restakeWindow)),
			Status:          helpers.RandomItem(models.RestakeStatuses),
		}
	}
	return restakers
}
