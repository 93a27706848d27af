package models

const (
	SlashReasonDoubleSigning      = "Double signing"
	SlashReasonDowntime           = "Downtime"
	SlashReasonInvalidAttestation = "Invalid attestation"
)

var SlashReasons = []string{
	SlashReasonDoubleSigning,
	SlashReasonDowntime,
	SlashReasonInvalidAttestation,
}

type SlashEvent struct {
	Timestamp       string `json:"timestamp"`
	Amount          string `json:"amount"`
	Reason          string `json:"reason"`
	TransactionHash string `json:"transaction_hash"`
}
