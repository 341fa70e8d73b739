package agents

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgentFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScanProjectThenUser(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()

	writeAgentFile(t, projectDir, "reviewer.md", "---\nname: reviewer\ndescription: Reviews code\n---\nYou are a reviewer.")
	writeAgentFile(t, userDir, "tester.md", "---\nname: tester\ndescription: Runs tests\n---\nYou are a tester.")

	scanner, err := NewScanner(WithProjectDir(projectDir), WithUserDir(userDir))
	require.NoError(t, err)

	records := scanner.Scan(context.Background())
	require.Len(t, records, 2)

	assert.Equal(t, "reviewer", records[0].Name)
	assert.Equal(t, LocationProject, records[0].Location)
	assert.Equal(t, filepath.Join(projectDir, "reviewer.md"), records[0].FilePath)

	assert.Equal(t, "tester", records[1].Name)
	assert.Equal(t, LocationUser, records[1].Location)
}

func TestScanSkipsNonAgentFiles(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()

	// Ordinary markdown without front-matter.
	writeAgentFile(t, projectDir, "README.md", "# Agents\n\nPut agent definitions here.")
	// Front-matter present but empty.
	writeAgentFile(t, projectDir, "empty.md", "---\n---\nBody without metadata.")
	// Unclosed front-matter.
	writeAgentFile(t, projectDir, "unclosed.md", "---\nname: nope")
	// Wrong extension.
	writeAgentFile(t, projectDir, "notes.txt", "---\nname: nope\n---\nbody")
	// Malformed YAML.
	writeAgentFile(t, projectDir, "broken.md", "---\nname: [unclosed\n---\nbody")
	// Subdirectories are not scanned, even with a matching name.
	require.NoError(t, os.MkdirAll(filepath.Join(projectDir, "nested.md"), 0o755))
	writeAgentFile(t, filepath.Join(projectDir, "nested.md"), "inner.md", "---\nname: nested\n---\nbody")

	writeAgentFile(t, projectDir, "real.md", "---\nname: real-agent\ndescription: Does real work\n---\nYou are real.")

	scanner, err := NewScanner(WithProjectDir(projectDir), WithUserDir(userDir))
	require.NoError(t, err)

	records := scanner.Scan(context.Background())
	require.Len(t, records, 1)
	assert.Equal(t, "real-agent", records[0].Name)
}

func TestScanAppliesRecordDefaults(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()

	writeAgentFile(t, projectDir, "bare-agent.md", "---\nowner: platform\n---\nShort prompt body.")

	scanner, err := NewScanner(WithProjectDir(projectDir), WithUserDir(userDir))
	require.NoError(t, err)

	records := scanner.Scan(context.Background())
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "bare-agent", rec.Name)
	assert.Equal(t, DefaultDescription, rec.Description)
	assert.Equal(t, DefaultTools, rec.Tools)
	assert.Equal(t, DefaultModel, rec.Model)
	assert.Equal(t, "Short prompt body.", rec.PromptPreview)
}

func TestScanDirectoryOrderIsByName(t *testing.T) {
	projectDir := t.TempDir()
	userDir := t.TempDir()

	writeAgentFile(t, projectDir, "zeta.md", "---\nname: zeta\n---\nZeta agent prompt.")
	writeAgentFile(t, projectDir, "alpha.md", "---\nname: alpha\n---\nAlpha agent prompt.")

	scanner, err := NewScanner(WithProjectDir(projectDir), WithUserDir(userDir))
	require.NoError(t, err)

	records := scanner.Scan(context.Background())
	require.Len(t, records, 2)
	assert.Equal(t, "alpha", records[0].Name)
	assert.Equal(t, "zeta", records[1].Name)
}

func TestScanMissingDirectories(t *testing.T) {
	scanner, err := NewScanner(
		WithProjectDir(filepath.Join(t.TempDir(), "does-not-exist")),
		WithUserDir(filepath.Join(t.TempDir(), "also-missing")),
	)
	require.NoError(t, err)

	records := scanner.Scan(context.Background())
	assert.Empty(t, records)
}

func TestNewScannerDefaults(t *testing.T) {
	scanner, err := NewScanner()
	require.NoError(t, err)

	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".claude", "agents"), scanner.projectDir)
	assert.Equal(t, filepath.Join(homeDir, ".claude", "agents"), scanner.userDir)
}

func TestScannerOptionValidation(t *testing.T) {
	_, err := NewScanner(WithProjectDir(""))
	assert.Error(t, err)

	_, err = NewScanner(WithUserDir(""))
	assert.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := expandHome("~/.claude/agents")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(homeDir, ".claude", "agents"), expanded)

	plain, err := expandHome("relative/path")
	require.NoError(t, err)
	assert.Equal(t, "relative/path", plain)
}
