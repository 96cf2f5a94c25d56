package github

// Owner identifies who owns the target repositories. Exactly one of User or
// Organization must be set; the listing endpoint differs between the two but
// the pagination contract is identical.
type Owner struct {
	User         string
	Organization string
}

// Validate enforces the mutual-exclusivity invariant on the owner identity.
func (o Owner) Validate() error {
	if o.User != "" && o.Organization != "" {
		return NewConfigError("owner must be either a user or an organization, not both")
	}
	if o.User == "" && o.Organization == "" {
		return NewConfigError("owner is required: provide either a user or an organization")
	}
	return nil
}

// IsOrganization reports whether the owner is an organization.
func (o Owner) IsOrganization() bool {
	return o.Organization != ""
}

// Name returns whichever identity is set.
func (o Owner) Name() string {
	if o.Organization != "" {
		return o.Organization
	}
	return o.User
}

// Repository is the subset of repository metadata discovery operates on.
// Topics are not included inline; they require a separate lookup per
// repository.
type Repository struct {
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
}

// RemoteFile is the current state of a file in a target repository. Content
// is the decoded payload; SHA is the content identifier the API requires to
// authorize an overwrite.
type RemoteFile struct {
	Content []byte
	SHA     string
}

// FileWrite carries a single create or update request. SHA must be empty for
// a create and must hold the remote file's current identifier for an update.
type FileWrite struct {
	Message string
	Content []byte
	SHA     string
}
