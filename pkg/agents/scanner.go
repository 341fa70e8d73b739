package agents

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/maxepunk/agentscan/pkg/logger"
)

// agentFilePattern matches top-level agent definition files.
const agentFilePattern = "*.md"

// Scanner discovers agent definitions in a project-level and a
// user-level directory.
type Scanner struct {
	projectDir string
	userDir    string
}

// ScannerOption configures a Scanner
type ScannerOption func(*Scanner) error

// WithProjectDir sets the project-level agents directory. A leading "~/"
// is expanded to the user home directory.
func WithProjectDir(dir string) ScannerOption {
	return func(s *Scanner) error {
		if dir == "" {
			return errors.New("project directory must not be empty")
		}
		expanded, err := expandHome(dir)
		if err != nil {
			return err
		}
		s.projectDir = expanded
		return nil
	}
}

// WithUserDir sets the user-level agents directory. A leading "~/" is
// expanded to the user home directory.
func WithUserDir(dir string) ScannerOption {
	return func(s *Scanner) error {
		if dir == "" {
			return errors.New("user directory must not be empty")
		}
		expanded, err := expandHome(dir)
		if err != nil {
			return err
		}
		s.userDir = expanded
		return nil
	}
}

// WithDefaultDirs sets the standard directories (.claude/agents,
// ~/.claude/agents).
func WithDefaultDirs() ScannerOption {
	return func(s *Scanner) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		s.projectDir = filepath.Join(".claude", "agents")
		s.userDir = filepath.Join(homeDir, ".claude", "agents")
		return nil
	}
}

// NewScanner creates a scanner with optional configuration; directories
// not set by an option fall back to the standard locations.
func NewScanner(opts ...ScannerOption) (*Scanner, error) {
	s := &Scanner{}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, errors.Wrap(err, "failed to apply scanner option")
		}
	}

	if s.projectDir == "" {
		s.projectDir = filepath.Join(".claude", "agents")
	}
	if s.userDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get user home directory")
		}
		s.userDir = filepath.Join(homeDir, ".claude", "agents")
	}

	return s, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}

// Scan walks the project directory then the user directory and returns a
// record for every agent definition found, in directory-listing order.
// Scanning never fails: a missing directory contributes nothing, and an
// unreadable or unparseable file is logged and skipped without affecting
// the rest of the scan.
func (s *Scanner) Scan(ctx context.Context) []Record {
	records := s.scanDir(ctx, s.projectDir, LocationProject)
	return append(records, s.scanDir(ctx, s.userDir, LocationUser)...)
}

func (s *Scanner) scanDir(ctx context.Context, dir, location string) []Record {
	entries, err := os.ReadDir(dir)
	if err != nil {
		// Directory might not exist, continue
		logger.G(ctx).WithField("dir", dir).Debug("Agents directory not found, skipping")
		return nil
	}

	var records []Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if matched, err := doublestar.Match(agentFilePattern, name); err != nil || !matched {
			continue
		}

		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			logger.G(ctx).WithField("path", path).WithError(err).Warn("Failed to read agent file, skipping")
			continue
		}

		doc, err := Parse(string(content))
		if err != nil {
			if errors.Is(err, ErrMalformedMetadata) {
				logger.G(ctx).WithField("path", path).WithError(err).Warn("Failed to parse frontmatter, skipping")
			}
			// Header-less markdown is ordinary documentation, not an anomaly.
			continue
		}
		if len(doc.Metadata) == 0 {
			continue
		}
		doc.SourcePath = path

		records = append(records, NewRecord(doc, strings.TrimSuffix(name, ".md"), location))
	}

	return records
}
