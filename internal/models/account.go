package models

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// AccountType is the relationship of a team member to the organization.
type AccountType string

const (
	TypeStaff     AccountType = "STAFF"
	TypeService   AccountType = "SERVICE"
	TypeCommunity AccountType = "COMMUNITY"
	TypeUnknown   AccountType = "UNKNOWN"
)

// AccountStatus says whether the account's authentication setup follows policy.
type AccountStatus string

const (
	StatusOkay AccountStatus = "OKAY"
	StatusBad  AccountStatus = "BAD"
)

// Staff email domains, as of 2024-11-05.
var staffEmailDomains = []string{
	"@mozilla.com",
	"@mozillafoundation.org",
	"@getpocket.com",
	"@readitlater.com",
	"@mozilla-japan.org",
	"@mozilla.ai",
	"@mozilla.vc",
	"@thunderbird.net",
}

// servicePrefix marks service accounts by naming convention.
const servicePrefix = "heroku-"

// Account is a classified team member. Accounts are only produced by Classify,
// so a half-classified account cannot exist and a record cannot be classified twice.
type Account struct {
	Email       string        `json:"email"`
	Federated   bool          `json:"federated"`
	TwoFactor   bool          `json:"two_factor_authentication"`
	Role        string        `json:"role"`
	Type        AccountType   `json:"account_type"`
	Status      AccountStatus `json:"account_status"`
	NeedsAction bool          `json:"needs_action"`
}

// Classify translates a raw Heroku member record into policy terms.
func Classify(m TeamMember) Account {
	a := Account{
		Email:     m.Email,
		Federated: m.Federated,
		TwoFactor: m.TwoFactorAuthentication,
		Role:      m.Role,
	}

	// First figure out what type of account it is. Service accounts outside
	// the staff domains are unexpected.
	service := strings.HasPrefix(a.Email, servicePrefix)
	if hasStaffDomain(a.Email) {
		if service {
			a.Type = TypeService
		} else {
			a.Type = TypeStaff
		}
	} else {
		if service {
			a.Type = TypeUnknown
		} else {
			a.Type = TypeCommunity
		}
	}

	// Now figure out whether the authentication method is valid. Service
	// accounts are expected to use basic auth, not SSO plus 2FA together.
	switch {
	case a.Type == TypeStaff && a.Federated:
		a.Status = StatusOkay
	case a.Type == TypeCommunity && a.TwoFactor:
		a.Status = StatusOkay
	case a.Type == TypeService && !(a.Federated && a.TwoFactor):
		a.Status = StatusOkay
	default:
		a.Status = StatusBad
	}

	a.NeedsAction = a.Type == TypeUnknown || a.Status != StatusOkay

	return a
}

func hasStaffDomain(email string) bool {
	for _, domain := range staffEmailDomains {
		if strings.HasSuffix(email, domain) {
			return true
		}
	}
	return false
}

// AsText renders the account as a one-line summary for admins.
func (a Account) AsText() string {
	action := "okay"
	if a.NeedsAction {
		action = fmt.Sprintf("BAD! type=%s; status=%s; SSO=%t; 2FA=%t",
			a.Type, a.Status, a.Federated, a.TwoFactor)
	}
	return fmt.Sprintf("%s: %s is a %s account with %s permissions.", action, a.Email, a.Type, a.Role)
}

// LogFields returns structured logging fields for this account.
func (a Account) LogFields() logrus.Fields {
	return logrus.Fields{
		"email":        a.Email,
		"type":         a.Type,
		"status":       a.Status,
		"needs_action": a.NeedsAction,
	}
}
