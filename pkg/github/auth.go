package github

import (
	"os"
	"strings"

	"github.com/ChaoticTrials/action-sync-workflows/pkg/config"
)

// AuthManager resolves the GitHub token for a sync run
type AuthManager struct{}

// NewAuthManager creates a new authentication manager
func NewAuthManager() *AuthManager {
	return &AuthManager{}
}

// GetToken retrieves the GitHub token from the action input, the environment
// or the config file, in that order.
func (am *AuthManager) GetToken(cfg *config.Config) (string, error) {
	for _, name := range []string{"INPUT_TOKEN", "GITHUB_TOKEN"} {
		if token := strings.TrimSpace(os.Getenv(name)); token != "" {
			return token, nil
		}
	}

	if cfg != nil && cfg.GitHub.Token != "" {
		return strings.TrimSpace(cfg.GitHub.Token), nil
	}

	return "", NewConfigError("no GitHub token found: set the token action input, the GITHUB_TOKEN environment variable, or github.token in the config file")
}

// GetAuthInstructions returns instructions for setting up GitHub authentication
func GetAuthInstructions() string {
	return `GitHub authentication is required. Please set up authentication using one of the following methods:

1. Action Input (Recommended for GitHub Actions):
   with:
     token: ${{ secrets.SYNC_TOKEN }}

2. Environment Variable:
   export GITHUB_TOKEN="your_personal_access_token"

3. Configuration File:
   github:
     token: "your_personal_access_token"

Note: The token must have 'repo' scope on every target repository to read
topics and write workflow files.`
}
