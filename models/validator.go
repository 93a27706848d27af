package models

type ValidatorStatus string

const (
	ValidatorStatusActive   ValidatorStatus = "active"
	ValidatorStatusJailed   ValidatorStatus = "jailed"
	ValidatorStatusSlashed  ValidatorStatus = "slashed"
	ValidatorStatusInactive ValidatorStatus = "inactive"
)

var ValidatorStatuses = []ValidatorStatus{
	ValidatorStatusActive,
	ValidatorStatusJailed,
	ValidatorStatusSlashed,
	ValidatorStatusInactive,
}

type ValidatorRecord struct {
	OperatorAddress     string          `json:"operator_address"`
	OperatorID          string          `json:"operator_id"`
	TotalDelegatedStake string          `json:"total_delegated_stake"`
	SlashEvents         []*SlashEvent   `json:"slash_events"`
	Status              ValidatorStatus `json:"status"`
	CommissionPct       string          `json:"commission_pct"`
	ApyPct              string          `json:"apy_pct"`
}

// HasSlashHistory reports whether the operator was ever penalized
func (v ValidatorRecord) HasSlashHistory() bool {
	return len(v.SlashEvents) > 0
}
