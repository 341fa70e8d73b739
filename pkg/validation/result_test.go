package validation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	findings := []Finding{
		errorf("first error"),
		suggestionf("first suggestion"),
		warningf("first warning"),
		errorf("second error"),
		warningf("second warning"),
	}

	result := Aggregate(findings)

	assert.Equal(t, []string{"first error", "second error"}, result.Errors)
	assert.Equal(t, []string{"first warning", "second warning"}, result.Warnings)
	assert.Equal(t, []string{"first suggestion"}, result.Suggestions)
}

func TestResultIsValid(t *testing.T) {
	assert.True(t, (&Result{}).IsValid())
	assert.True(t, (&Result{Warnings: []string{"w"}, Suggestions: []string{"s"}}).IsValid())
	assert.False(t, (&Result{Errors: []string{"e"}}).IsValid())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "suggestion", SeveritySuggestion.String())
}

func TestRenderReportPassed(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{Suggestions: []string{"consider a trigger phrase"}}

	require.NoError(t, result.RenderReport(&buf, "agent.md"))
	out := buf.String()

	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, "VALIDATION REPORT: agent.md")
	assert.Contains(t, out, "✅ PASSED - Agent definition is valid")
	assert.Contains(t, out, "SUGGESTIONS (1):")
	assert.Contains(t, out, "  1. consider a trigger phrase")
	assert.NotContains(t, out, "ERRORS")
	assert.NotContains(t, out, "WARNINGS")
}

func TestRenderReportFailed(t *testing.T) {
	var buf bytes.Buffer
	result := &Result{
		Errors:   []string{"missing name", "bad tools"},
		Warnings: []string{"long description"},
	}

	require.NoError(t, result.RenderReport(&buf, "broken.md"))
	out := buf.String()

	assert.Contains(t, out, "❌ FAILED - Agent definition has errors")
	assert.Contains(t, out, "ERRORS (2):")
	assert.Contains(t, out, "  1. missing name")
	assert.Contains(t, out, "  2. bad tools")
	assert.Contains(t, out, "WARNINGS (1):")
	assert.Contains(t, out, "  1. long description")
	assert.NotContains(t, out, "SUGGESTIONS")
}

func TestBatch(t *testing.T) {
	t.Run("all valid passes", func(t *testing.T) {
		batch := NewBatch(false)
		batch.Add(&Result{})
		batch.Add(&Result{Suggestions: []string{"s"}})
		assert.True(t, batch.OK())
	})

	t.Run("any invalid result fails", func(t *testing.T) {
		batch := NewBatch(false)
		batch.Add(&Result{})
		batch.Add(&Result{Errors: []string{"e"}})
		batch.Add(&Result{})
		assert.False(t, batch.OK())
	})

	t.Run("warnings pass without strict", func(t *testing.T) {
		batch := NewBatch(false)
		batch.Add(&Result{Warnings: []string{"w"}})
		assert.True(t, batch.OK())
	})

	t.Run("warnings fail with strict", func(t *testing.T) {
		batch := NewBatch(true)
		result := &Result{Warnings: []string{"w"}}
		batch.Add(result)

		assert.False(t, batch.OK())
		// Strict mode fails the batch without touching the result.
		assert.True(t, result.IsValid())
		assert.Len(t, result.Warnings, 1)
		assert.Empty(t, result.Errors)
	})

	t.Run("suggestions never fail, even strict", func(t *testing.T) {
		batch := NewBatch(true)
		batch.Add(&Result{Suggestions: []string{"s"}})
		assert.True(t, batch.OK())
	})

	t.Run("out-of-band failure", func(t *testing.T) {
		batch := NewBatch(false)
		batch.Fail()
		batch.Add(&Result{})
		assert.False(t, batch.OK())
	})
}
