package interfaces

import (
	"context"

	"github.com/mozilla-it/heroku-audit/internal/models"
)

// TeamAPI defines the operations needed from the Heroku Platform API.
type TeamAPI interface {
	// ListMembers returns all members of a team. Implementations memoize per
	// team for the lifetime of the client.
	ListMembers(ctx context.Context, team string) ([]models.TeamMember, error)

	// DeleteMember removes one member from a team. A missing member is an
	// explicit outcome, not an error.
	DeleteMember(ctx context.Context, team string, email string) (models.RevokeResult, error)
}
