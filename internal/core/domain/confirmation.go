package domain

import "time"

// RegistrationConfirmation is the time-bounded record created alongside a new
// user. Exactly one unconfirmed confirmation exists per user at a time; the
// cleanup job removes rows once their deadline has passed, confirmed or not.
type RegistrationConfirmation struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Code        string     `json:"code"`
	AllowedUpTo time.Time  `json:"allowed_up_to"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Confirmed reports whether the confirmation has been consumed.
func (c *RegistrationConfirmation) Confirmed() bool {
	return c.ConfirmedAt != nil
}

// Expired reports whether now is past the confirmation deadline. The deadline
// instant itself still counts as valid, matching the activation check.
func (c *RegistrationConfirmation) Expired(now time.Time) bool {
	return now.After(c.AllowedUpTo)
}
