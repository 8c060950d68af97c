package models

// RevokeOutcome distinguishes the expected results of a member delete.
// Attempting to revoke an already-gone member is benign, not an error.
type RevokeOutcome string

const (
	RevokeOutcomeRevoked    RevokeOutcome = "revoked"
	RevokeOutcomeNotAMember RevokeOutcome = "not_a_member"
)

// RevokeResult is the outcome of a single member delete call.
type RevokeResult struct {
	Outcome RevokeOutcome
	// Member is the deleted member record as returned by the API.
	// Nil when the outcome is not_a_member.
	Member *TeamMember
}
