package domain

import (
	"time"
)

const DefaultNetwork = "unknown"

// Registration is the waiting list entry. It is stored as JSON under the
// email key and duplicated under the wallet key.
type Registration struct {
	Email             string     `json:"email"`
	WalletAddress     string     `json:"walletAddress"`
	Signature         string     `json:"signature"`
	Network           string     `json:"network"`
	JoinedAt          time.Time  `json:"joinedAt"`
	Position          int        `json:"position"`
	Verified          bool       `json:"verified"`
	VerificationToken string     `json:"verificationToken,omitempty"`
	VerifiedAt        *time.Time `json:"verifiedAt,omitempty"`
}

// MarkVerified consumes the verification token. verifiedAt never precedes
// joinedAt even if the clock went backwards.
func (r *Registration) MarkVerified(now time.Time) {
	if now.Before(r.JoinedAt) {
		now = r.JoinedAt
	}
	r.Verified = true
	r.VerifiedAt = &now
	r.VerificationToken = ""
}

// NetworkLabel returns the network or DefaultNetwork when it is blank.
func (r *Registration) NetworkLabel() string {
	if r.Network == "" {
		return DefaultNetwork
	}
	return r.Network
}

// RegistrationView is a registration without its verification token, as
// shown to the public lookup and to admins.
type RegistrationView struct {
	Email         string     `json:"email"`
	WalletAddress string     `json:"walletAddress"`
	Signature     string     `json:"signature"`
	Network       string     `json:"network"`
	JoinedAt      time.Time  `json:"joinedAt"`
	Position      int        `json:"position"`
	Verified      bool       `json:"verified"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
}

func (r *Registration) View() RegistrationView {
	return RegistrationView{
		Email:         r.Email,
		WalletAddress: r.WalletAddress,
		Signature:     r.Signature,
		Network:       r.NetworkLabel(),
		JoinedAt:      r.JoinedAt,
		Position:      r.Position,
		Verified:      r.Verified,
		VerifiedAt:    r.VerifiedAt,
	}
}
