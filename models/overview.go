package models

// Overview is derived from the restaker and validator collections and is never stored.
// AverageApy and EstimatedTotalRewards stay empty when there are no validators.
type Overview struct {
	TotalRestaked         string `json:"total_restaked"          structs:"total_restaked"`
	RestakerCount         int    `json:"restaker_count"          structs:"restaker_count"`
	ValidatorCount        int    `json:"validator_count"         structs:"validator_count"`
	AverageApy            string `json:"average_apy,omitempty"   structs:"average_apy,omitempty"`
	EstimatedTotalRewards string `json:"estimated_total_rewards,omitempty" structs:"estimated_total_rewards,omitempty"`
}
