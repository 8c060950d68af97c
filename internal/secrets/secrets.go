package secrets

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/aws/aws-secretsmanager-caching-go/v2/secretcache"
)

// Recognized secret-reference schemes for the token value.
const (
	opPrefix    = "op://"
	smPrefix    = "sm://"
	smARNPrefix = "arn:aws:secretsmanager:"
)

// Manager wraps the Secrets Manager cache client.
type Manager struct {
	cache *secretcache.Cache
}

// NewManager creates a new Secrets Manager cache.
func NewManager() (*Manager, error) {
	cache, err := secretcache.New()
	if err != nil {
		return nil, err
	}
	return &Manager{cache: cache}, nil
}

// GetSecretString retrieves a secret value from Secrets Manager.
func (m *Manager) GetSecretString(secretID string) (string, error) {
	if secretID == "" {
		return "", fmt.Errorf("secret id is required")
	}
	value, err := m.cache.GetSecretString(secretID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// LoadTokenFromFile reads a token value from a local file.
func LoadTokenFromFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// readOpReference retrieves a secret through the 1Password CLI.
func readOpReference(ref string) (string, error) {
	out, err := exec.Command("op", "read", ref).Output()
	if err != nil {
		return "", fmt.Errorf("failed to retrieve token from `op`: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// Resolve turns a configured token value into a usable bearer token. The value
// may be a literal token, a 1Password reference (op://), a Secrets Manager
// reference (sm:// or a full ARN), or empty with a token file configured.
// Callers treat any error here as fatal: nothing works without a token.
func Resolve(token string, tokenFile string) (string, error) {
	switch {
	case strings.HasPrefix(token, opPrefix):
		return readOpReference(token)
	case strings.HasPrefix(token, smPrefix):
		manager, err := NewManager()
		if err != nil {
			return "", err
		}
		return manager.GetSecretString(strings.TrimPrefix(token, smPrefix))
	case strings.HasPrefix(token, smARNPrefix):
		manager, err := NewManager()
		if err != nil {
			return "", err
		}
		return manager.GetSecretString(token)
	case token != "":
		return token, nil
	case tokenFile != "":
		return LoadTokenFromFile(tokenFile)
	}
	return "", fmt.Errorf("no token configured")
}
