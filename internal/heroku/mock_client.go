package heroku

import (
	"context"

	"github.com/mozilla-it/heroku-audit/internal/models"
)

// MockClient is a simple mock implementation of the team API.
type MockClient struct {
	ListMembersFunc  func(ctx context.Context, team string) ([]models.TeamMember, error)
	DeleteMemberFunc func(ctx context.Context, team string, email string) (models.RevokeResult, error)
}

func (m *MockClient) ListMembers(ctx context.Context, team string) ([]models.TeamMember, error) {
	if m.ListMembersFunc == nil {
		return nil, nil
	}
	return m.ListMembersFunc(ctx, team)
}

func (m *MockClient) DeleteMember(ctx context.Context, team string, email string) (models.RevokeResult, error) {
	if m.DeleteMemberFunc == nil {
		return models.RevokeResult{}, nil
	}
	return m.DeleteMemberFunc(ctx, team, email)
}
