package models

// VerificationCode is a one-shot code a new member redeems to get the
// verified role.
type VerificationCode struct {
	Code       string `json:"code"`
	CreatedBy  string `json:"createdBy"`
	CreatedAt  int64  `json:"createdAt"`
	RedeemedBy string `json:"redeemedBy,omitempty"`
	RedeemedAt int64  `json:"redeemedAt,omitempty"`
}

// VerificationDocument maps a code to its record
type VerificationDocument map[string]VerificationCode
