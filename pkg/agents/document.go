// Package agents parses and discovers agent definitions: markdown files
// that open with a YAML front-matter header followed by a free-form
// system prompt body.
package agents

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Parse failure kinds, distinguishable with errors.Is. The messages are
// the texts surfaced in validation reports.
var (
	// ErrMissingHeader reports content that does not open with a front-matter marker.
	ErrMissingHeader = errors.New("File must start with YAML frontmatter (---)")
	// ErrUnclosedHeader reports a front-matter block with no closing marker.
	ErrUnclosedHeader = errors.New("Unclosed YAML frontmatter (missing closing ---)")
	// ErrMalformedMetadata reports a front-matter block that does not decode as a YAML mapping.
	ErrMalformedMetadata = errors.New("Invalid YAML frontmatter")
)

// Document is a parsed agent definition. Metadata holds the decoded
// front-matter mapping (never nil), Body the trimmed system prompt text
// after the closing marker. SourcePath is set by callers for reporting.
type Document struct {
	Metadata   map[string]any
	Body       string
	SourcePath string
}

// Parse splits raw content into front-matter metadata and body. The
// closing marker is the first "---" found after the opening one,
// regardless of line position. An empty or null front-matter block
// yields an empty metadata map. Parse has no side effects.
func Parse(raw string) (*Document, error) {
	if !strings.HasPrefix(raw, "---") {
		return nil, ErrMissingHeader
	}

	end := strings.Index(raw[3:], "---")
	if end == -1 {
		return nil, ErrUnclosedHeader
	}
	end += 3

	block := strings.TrimSpace(raw[3:end])

	var metadata map[string]any
	if err := yaml.Unmarshal([]byte(block), &metadata); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedMetadata, err)
	}
	if metadata == nil {
		metadata = map[string]any{}
	}

	return &Document{
		Metadata: metadata,
		Body:     strings.TrimSpace(raw[end+3:]),
	}, nil
}
