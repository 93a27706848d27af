package models

type RestakeStatus string

const (
	RestakeStatusActive    RestakeStatus = "active"
	RestakeStatusPending   RestakeStatus = "pending"
	RestakeStatusWithdrawn RestakeStatus = "withdrawn"
)

var RestakeStatuses = []RestakeStatus{
	RestakeStatusActive,
	RestakeStatusPending,
	RestakeStatusWithdrawn,
}

type RestakeRecord struct {
	UserAddress     string        `json:"user_address"`
	AmountRestaked  string        `json:"amount_restaked"`
	TargetValidator string        `json:"target_validator"`
	Timestamp       string        `json:"timestamp"`
	Status          RestakeStatus `json:"status"`
}
