// Package github provides the GitHub API surface for workflow synchronization.
// It wraps the GitHub REST API behind a narrow APIClient interface covering
// repository listing, topic lookup and workflow file content operations.
//
// The package includes:
// - APIClient interface for the remote operations the sync run depends on
// - Client implementation backed by the go-github library
// - Owner identity type for user/organization targets
// - Typed error taxonomy for configuration, fetch and write failures
// - Token resolution for action inputs, environment and config file
package github
