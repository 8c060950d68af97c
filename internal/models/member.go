package models

// TeamMember is the raw member record returned by the Heroku Platform API.
// Heroku returns far more fields than the audit needs; only the ones the
// classification policy reads are decoded.
type TeamMember struct {
	Email                   string `json:"email"`
	Federated               bool   `json:"federated"`
	Role                    string `json:"role"`
	TwoFactorAuthentication bool   `json:"two_factor_authentication"`
}
