package heroku

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/mozilla-it/heroku-audit/internal/models"
	"github.com/sirupsen/logrus"
)

// DefaultAPIURL is the public Heroku Platform API endpoint.
const DefaultAPIURL = "https://api.heroku.com"

// acceptHeader pins the Platform API version on every request.
const acceptHeader = "application/vnd.heroku+json; version=3"

// Client implements team membership operations against the Heroku Platform API.
type Client struct {
	http *resty.Client

	mu      sync.Mutex
	members map[string][]models.TeamMember
}

// NewClient creates a Heroku API client using a bearer token. The token is not
// validated here; an invalid token surfaces on the first API call.
func NewClient(baseURL string, token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("heroku token is required")
	}
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(token).
		SetHeader("Accept", acceptHeader)
	return &Client{http: httpClient, members: make(map[string][]models.TeamMember)}, nil
}

// ListMembers lists all members of a team. The result is memoized per team for
// the client lifetime, so membership changes made mid-run (e.g. a revoke) are
// not reflected in later calls.
func (c *Client) ListMembers(ctx context.Context, team string) ([]models.TeamMember, error) {
	if team == "" {
		return nil, fmt.Errorf("team is required")
	}

	c.mu.Lock()
	cached, ok := c.members[team]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	// The Platform API paginates with Range headers: a 206 response carries a
	// Next-Range header for the following page.
	var all []models.TeamMember
	nextRange := ""
	for {
		var page []models.TeamMember
		req := c.http.R().SetContext(ctx).SetResult(&page)
		if nextRange != "" {
			req.SetHeader("Range", nextRange)
		}
		resp, err := req.Get(fmt.Sprintf("/teams/%s/members", url.PathEscape(team)))
		if err != nil {
			return nil, fmt.Errorf("listing members of %s: %w", team, err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("list members API returned status %d: %s", resp.StatusCode(), resp.String())
		}
		all = append(all, page...)

		if resp.StatusCode() != http.StatusPartialContent {
			break
		}
		nextRange = resp.Header().Get("Next-Range")
		if nextRange == "" {
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"team":    team,
		"members": len(all),
	}).Debug("team member list fetched")

	c.mu.Lock()
	c.members[team] = all
	c.mu.Unlock()

	return all, nil
}

// DeleteMember removes a member from a team. A 404 means the address is not a
// member, which is an expected outcome; any other error status is returned to
// the caller.
func (c *Client) DeleteMember(ctx context.Context, team string, email string) (models.RevokeResult, error) {
	if team == "" || email == "" {
		return models.RevokeResult{}, fmt.Errorf("team and email are required")
	}

	var member models.TeamMember
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&member).
		Delete(fmt.Sprintf("/teams/%s/members/%s", url.PathEscape(team), url.PathEscape(email)))
	if err != nil {
		return models.RevokeResult{}, fmt.Errorf("deleting member %s: %w", email, err)
	}

	if resp.StatusCode() == http.StatusNotFound {
		return models.RevokeResult{Outcome: models.RevokeOutcomeNotAMember}, nil
	}
	if resp.IsError() {
		return models.RevokeResult{}, fmt.Errorf("delete member API returned status %d: %s", resp.StatusCode(), resp.String())
	}

	return models.RevokeResult{Outcome: models.RevokeOutcomeRevoked, Member: &member}, nil
}
