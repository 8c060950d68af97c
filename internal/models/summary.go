package models

import "fmt"

// AuditSummary provides aggregate statistics over one classified member list.
type AuditSummary struct {
	MembersTotal int `json:"members_total"`
	NeedsAction  int `json:"needs_action"`
	Staff        int `json:"staff"`
	Service      int `json:"service"`
	Community    int `json:"community"`
	Unknown      int `json:"unknown"`
}

// Summarize counts accounts by type and policy state.
func Summarize(accounts []Account) AuditSummary {
	var s AuditSummary
	s.MembersTotal = len(accounts)
	for _, a := range accounts {
		if a.NeedsAction {
			s.NeedsAction++
		}
		switch a.Type {
		case TypeStaff:
			s.Staff++
		case TypeService:
			s.Service++
		case TypeCommunity:
			s.Community++
		case TypeUnknown:
			s.Unknown++
		}
	}
	return s
}

// String returns a human-readable representation of the audit summary.
func (s AuditSummary) String() string {
	return fmt.Sprintf(
		"audit completed — Members: %d, Needs action: %d, "+
			"Staff: %d, Service: %d, Community: %d, Unknown: %d",
		s.MembersTotal, s.NeedsAction,
		s.Staff, s.Service, s.Community, s.Unknown,
	)
}

// RevokeSummary provides aggregate statistics over one revocation batch.
type RevokeSummary struct {
	Requested  int `json:"requested"`
	Revoked    int `json:"revoked"`
	NotMembers int `json:"not_members"`
	Failed     int `json:"failed"`
}

// String returns a human-readable representation of the revocation summary.
func (s RevokeSummary) String() string {
	return fmt.Sprintf(
		"revocation completed — Requested: %d, Revoked: %d, Not members: %d, Failed: %d",
		s.Requested, s.Revoked, s.NotMembers, s.Failed,
	)
}
