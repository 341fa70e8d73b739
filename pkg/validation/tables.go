// Package validation applies the fixed agent definition rule set and
// aggregates the findings by severity.
package validation

import "regexp"

// Length thresholds. All lengths are rune counts.
const (
	maxNameLength        = 50
	minDescriptionLength = 20
	maxDescriptionLength = 500
	minPromptLength      = 50
	maxPromptLength      = 5000
)

var (
	// kebabCasePattern is the required agent name shape.
	kebabCasePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

	// numberedStepPattern detects a numbered workflow in the prompt.
	numberedStepPattern = regexp.MustCompile(`(?m)^\d+\.`)
)

// genericNames say nothing about an agent's purpose; names with the
// agent- prefix are flagged the same way.
var genericNames = []string{"helper", "agent", "assistant", "worker", "handler"}

// triggerPhrases mark a description that tells the caller when to
// invoke the agent (matched case-insensitively).
var triggerPhrases = []string{"PROACTIVE", "MUST BE USED", "automatically invoke", "required for"}

// genericPhrases mark a description that says nothing specific.
var genericPhrases = []string{"helps with", "assists in", "general purpose"}

// validTools is the standard tool allow-list. Unknown entries are
// tolerated because MCP tools are legitimate.
var validTools = []string{"Read", "Edit", "Bash", "Grep", "Task"}

// validModels are the recognized model aliases.
var validModels = []string{"opus", "sonnet", "haiku"}

// Prompt structure gauges, all matched case-insensitively.
var (
	rolePatterns     = []string{"You are", "You're", "Your role"}
	boundaryKeywords = []string{"constraint", "boundary", "scope", "do not", "avoid", "only"}
	outputKeywords   = []string{"output", "return", "provide", "format", "structure"}
)
