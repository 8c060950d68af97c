package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/mozilla-it/heroku-audit/internal/heroku"
	"github.com/mozilla-it/heroku-audit/internal/models"
)

func testMembers() []models.TeamMember {
	return []models.TeamMember{
		{Email: "a@mozilla.com", Federated: true, Role: "admin"},
		{Email: "b@mozilla.com", Role: "member"},
		{Email: "user@gmail.com", TwoFactorAuthentication: true, Role: "member"},
	}
}

func listMock(members []models.TeamMember) *heroku.MockClient {
	return &heroku.MockClient{
		ListMembersFunc: func(ctx context.Context, team string) ([]models.TeamMember, error) {
			return members, nil
		},
	}
}

func TestProblemMembersFiltersCompliant(t *testing.T) {
	auditor := New(listMock(testMembers()), "example-team")

	problems, err := auditor.ProblemMembers(context.Background(), false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(problems) != 1 {
		t.Fatalf("expected 1 problem member, got %d", len(problems))
	}
	if problems[0].Email != "b@mozilla.com" {
		t.Fatalf("expected b@mozilla.com flagged, got %s", problems[0].Email)
	}
}

func TestProblemMembersAllFlag(t *testing.T) {
	auditor := New(listMock(testMembers()), "example-team")

	all, err := auditor.ProblemMembers(context.Background(), true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected all 3 members, got %d", len(all))
	}
}

func TestMemberEmails(t *testing.T) {
	auditor := New(listMock(testMembers()), "example-team")

	emails, err := auditor.MemberEmails(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{"a@mozilla.com", "b@mozilla.com", "user@gmail.com"}
	if len(emails) != len(want) {
		t.Fatalf("expected %d emails, got %d", len(want), len(emails))
	}
	for i, email := range want {
		if emails[i] != email {
			t.Fatalf("expected %s at index %d, got %s", email, i, emails[i])
		}
	}
}

func TestVerifyMembership(t *testing.T) {
	auditor := New(listMock(testMembers()), "example-team")

	status, err := auditor.VerifyMembership(context.Background(), []string{"a@mozilla.com", "stranger@gmail.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status[0] != "a@mozilla.com is a member of example-team" {
		t.Fatalf("unexpected status %q", status[0])
	}
	if status[1] != "stranger@gmail.com is NOT a member of example-team" {
		t.Fatalf("unexpected status %q", status[1])
	}
}

func TestVerifyMembershipExampleDomainCarveOut(t *testing.T) {
	// example.com addresses are always members, so the revoke path can be
	// exercised safely regardless of actual list contents.
	auditor := New(listMock(nil), "example-team")

	status, err := auditor.VerifyMembership(context.Background(), []string{"ghost@example.com"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status[0] != "ghost@example.com is a member of example-team" {
		t.Fatalf("unexpected status %q", status[0])
	}
}

func TestRevokeNonMemberSkipsAPICall(t *testing.T) {
	deleteCalls := 0
	mock := listMock(testMembers())
	mock.DeleteMemberFunc = func(ctx context.Context, team string, email string) (models.RevokeResult, error) {
		deleteCalls++
		return models.RevokeResult{Outcome: models.RevokeOutcomeRevoked}, nil
	}
	auditor := New(mock, "example-team")

	status, summary, err := auditor.RevokeMembership(context.Background(), []string{"ghost@nowhere.test"}, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleteCalls != 0 {
		t.Fatalf("expected no delete calls, got %d", deleteCalls)
	}
	if status[0] != "ghost@nowhere.test was NOT a member of example-team" {
		t.Fatalf("unexpected status %q", status[0])
	}
	if summary.NotMembers != 1 || summary.Revoked != 0 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRevokeMember(t *testing.T) {
	mock := listMock(testMembers())
	mock.DeleteMemberFunc = func(ctx context.Context, team string, email string) (models.RevokeResult, error) {
		member := models.TeamMember{Email: email}
		return models.RevokeResult{Outcome: models.RevokeOutcomeRevoked, Member: &member}, nil
	}
	auditor := New(mock, "example-team")

	status, summary, err := auditor.RevokeMembership(context.Background(), []string{"b@mozilla.com"}, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status[0] != "b@mozilla.com revoked from example-team" {
		t.Fatalf("unexpected status %q", status[0])
	}
	if summary.Revoked != 1 {
		t.Fatalf("expected 1 revoked, got %+v", summary)
	}
}

func TestRevokeAlreadyGoneMember(t *testing.T) {
	mock := listMock(testMembers())
	mock.DeleteMemberFunc = func(ctx context.Context, team string, email string) (models.RevokeResult, error) {
		return models.RevokeResult{Outcome: models.RevokeOutcomeNotAMember}, nil
	}
	auditor := New(mock, "example-team")

	status, summary, err := auditor.RevokeMembership(context.Background(), []string{"ghost@example.com"}, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if status[0] != "ghost@example.com is not a member of example-team (404)" {
		t.Fatalf("unexpected status %q", status[0])
	}
	if summary.NotMembers != 1 {
		t.Fatalf("expected 1 not-member, got %+v", summary)
	}
}

func TestRevokeFailureDoesNotAbortBatch(t *testing.T) {
	mock := listMock(testMembers())
	mock.DeleteMemberFunc = func(ctx context.Context, team string, email string) (models.RevokeResult, error) {
		if email == "a@mozilla.com" {
			return models.RevokeResult{}, fmt.Errorf("delete member API returned status 500")
		}
		return models.RevokeResult{Outcome: models.RevokeOutcomeRevoked}, nil
	}
	auditor := New(mock, "example-team")

	status, summary, err := auditor.RevokeMembership(context.Background(), []string{"a@mozilla.com", "b@mozilla.com"}, false)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(status) != 2 {
		t.Fatalf("expected 2 status lines, got %d", len(status))
	}
	if status[0] != "a@mozilla.com failed membership revocation from example-team" {
		t.Fatalf("unexpected status %q", status[0])
	}
	if status[1] != "b@mozilla.com revoked from example-team" {
		t.Fatalf("unexpected status %q", status[1])
	}
	if summary.Failed != 1 || summary.Revoked != 1 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRevokeDryRun(t *testing.T) {
	deleteCalls := 0
	mock := listMock(testMembers())
	mock.DeleteMemberFunc = func(ctx context.Context, team string, email string) (models.RevokeResult, error) {
		deleteCalls++
		return models.RevokeResult{}, nil
	}
	auditor := New(mock, "example-team")

	status, _, err := auditor.RevokeMembership(context.Background(), []string{"b@mozilla.com"}, true)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if deleteCalls != 0 {
		t.Fatalf("expected no delete calls in dry run, got %d", deleteCalls)
	}
	if status[0] != "would revoke b@mozilla.com from example-team (dry run)" {
		t.Fatalf("unexpected status %q", status[0])
	}
}
