package models

type RewardSummary struct {
	WalletAddress         string                  `json:"wallet_address"`
	TotalRewards          string                  `json:"total_rewards"`
	PerValidatorBreakdown []*ValidatorRewardShare `json:"per_validator_breakdown"`
	LastUpdated           string                  `json:"last_updated"`
}

type ValidatorRewardShare struct {
	ValidatorAddress string   `json:"validator_address"`
	RewardsEarned    string   `json:"rewards_earned"`
	RewardTimestamps []string `json:"reward_timestamps"`
	ApyPct           string   `json:"apy_pct"`
}
