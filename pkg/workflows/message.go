package workflows

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// commitMessage builds the commit message for a create or update. The prefix
// is trimmed and omitted entirely when empty, so an unset prefix leaves no
// leading space.
func commitMessage(prefix, verb, file, permalink string) string {
	subject := fmt.Sprintf("%s %s.", verb, file)
	if trimmed := strings.TrimSpace(prefix); trimmed != "" {
		subject = trimmed + " " + subject
	}
	return fmt.Sprintf("%s\n\nSynced from %s", subject, permalink)
}

// permalink links to the source file at the exact commit the run started
// from, falling back to the symbolic HEAD reference when no commit identifier
// is available. The link is traceability metadata only, never used for logic.
func (s *Syncer) permalink(name string) string {
	ref := s.options.Source.SHA
	if ref == "" {
		ref = "HEAD"
	}
	filePath := path.Join(filepath.ToSlash(s.options.Directory), name)
	return fmt.Sprintf("https://github.com/%s/blob/%s/%s", s.options.Source.Repository, ref, filePath)
}
