package validation

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/maxepunk/agentscan/pkg/agents"
)

// rule is one independent group of checks over a parsed document. A
// group may stop at its own "missing field" finding, but groups never
// short-circuit each other.
type rule func(doc *agents.Document) []Finding

// rules is the fixed evaluation order.
var rules = []rule{
	checkName,
	checkDescription,
	checkTools,
	checkModel,
	checkPrompt,
}

// Run applies every rule group to the document, in declared order.
func Run(doc *agents.Document) []Finding {
	var findings []Finding
	for _, r := range rules {
		findings = append(findings, r(doc)...)
	}
	return findings
}

// ValidateFile validates one file on disk. Every failure mode becomes a
// finding; ValidateFile itself never fails.
func ValidateFile(path string) *Result {
	if ext := filepath.Ext(path); ext != ".md" {
		return Aggregate([]Finding{errorf("Agent file must have .md extension, got %s", ext)})
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return Aggregate([]Finding{errorf("Failed to read file: %v", err)})
	}

	doc, err := agents.Parse(string(content))
	if err != nil {
		return Aggregate([]Finding{errorf("%v", err)})
	}
	doc.SourcePath = path

	return Aggregate(Run(doc))
}

func checkName(doc *agents.Document) []Finding {
	name := stringField(doc.Metadata, "name")
	if name == "" {
		return []Finding{errorf("Missing 'name' field in frontmatter")}
	}

	var findings []Finding
	if !kebabCasePattern.MatchString(name) {
		findings = append(findings, errorf(
			"Name '%s' should be kebab-case (lowercase with hyphens): e.g., 'performance-optimizer', 'security-scanner'", name))
	}
	if length := utf8.RuneCountInString(name); length > maxNameLength {
		findings = append(findings, warningf(
			"Name is quite long (%d chars). Consider shortening.", length))
	}
	if isGenericName(name) {
		findings = append(findings, warningf(
			"Name '%s' is generic. Consider more specific name describing the agent's purpose.", name))
	}
	return findings
}

func checkDescription(doc *agents.Document) []Finding {
	description := stringField(doc.Metadata, "description")
	if description == "" {
		return []Finding{errorf("Missing 'description' field in frontmatter")}
	}

	var findings []Finding
	length := utf8.RuneCountInString(description)
	if length < minDescriptionLength {
		findings = append(findings, warningf(
			"Description is very short (%d chars). Add more detail about when and how to use this agent.", length))
	}
	if length > maxDescriptionLength {
		findings = append(findings, warningf(
			"Description is very long (%d chars). Consider being more concise while keeping key trigger conditions.", length))
	}
	if !containsAnyFold(description, triggerPhrases) {
		findings = append(findings, suggestionf(
			"Consider adding explicit trigger conditions like 'Use PROACTIVELY when...' or 'MUST BE USED for...' to help Claude know when to invoke this agent."))
	}
	if containsAnyFold(description, genericPhrases) {
		findings = append(findings, warningf(
			"Description contains generic phrases. Be more specific about capabilities and use cases."))
	}
	return findings
}

func checkTools(doc *agents.Document) []Finding {
	tools, ok := doc.Metadata["tools"]
	if !ok || tools == nil {
		return []Finding{suggestionf(
			"No 'tools' field specified - agent will inherit all tools. Consider restricting tools if agent has focused purpose.")}
	}

	switch v := tools.(type) {
	case string:
		return []Finding{errorf("'tools' should be a list, not a string: %s", v)}
	case []any:
		var findings []Finding
		for _, tool := range v {
			if !isValidTool(tool) {
				findings = append(findings, warningf(
					"Tool '%v' is not a standard tool. Valid tools: %s (plus MCP tools)", tool, strings.Join(validTools, ", ")))
			}
		}
		return findings
	default:
		return []Finding{errorf("'tools' should be a list, got %T", v)}
	}
}

func checkModel(doc *agents.Document) []Finding {
	model, ok := doc.Metadata["model"]
	if !ok || model == nil || model == "" {
		return []Finding{suggestionf(
			"No 'model' field specified - agent will use main conversation model. Consider specifying 'opus', 'sonnet', or 'haiku' based on task complexity.")}
	}

	if name, isString := model.(string); isString && isValidModel(name) {
		return nil
	}
	return []Finding{warningf(
		"Model '%v' is not standard. Valid models: %s", model, strings.Join(validModels, ", "))}
}

func checkPrompt(doc *agents.Document) []Finding {
	prompt := doc.Body
	if prompt == "" {
		return []Finding{errorf("Missing system prompt after frontmatter")}
	}

	var findings []Finding
	length := utf8.RuneCountInString(prompt)
	if length < minPromptLength {
		findings = append(findings, errorf(
			"System prompt is very short (%d chars). Provide detailed instructions for the agent's role and approach.", length))
	}
	if length > maxPromptLength {
		findings = append(findings, warningf(
			"System prompt is very long (%d chars). Consider moving detailed reference material to separate files.", length))
	}
	if !numberedStepPattern.MatchString(prompt) {
		findings = append(findings, suggestionf(
			"Consider structuring the prompt with numbered steps: 'When invoked: 1. First step 2. Second step ...'"))
	}
	if !containsAnyFold(prompt, rolePatterns) {
		findings = append(findings, suggestionf(
			"Consider starting with explicit role definition: 'You are a [role] with expertise in...'"))
	}
	if !containsAnyFold(prompt, boundaryKeywords) {
		findings = append(findings, suggestionf(
			"Consider adding explicit constraints or scope boundaries: 'CONSTRAINTS: Only modify...' or 'DO NOT: Change...'"))
	}
	if !containsAnyFold(prompt, outputKeywords) {
		findings = append(findings, suggestionf(
			"Consider specifying expected output format: 'OUTPUT FORMAT: ...'"))
	}
	return findings
}

// stringField returns a metadata value as a string; absent or non-string
// values yield "".
func stringField(metadata map[string]any, key string) string {
	value, _ := metadata[key].(string)
	return value
}

func containsAnyFold(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range phrases {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

func isGenericName(name string) bool {
	for _, generic := range genericNames {
		if name == generic {
			return true
		}
	}
	return strings.HasPrefix(name, "agent-")
}

func isValidTool(tool any) bool {
	name, ok := tool.(string)
	if !ok {
		return false
	}
	for _, valid := range validTools {
		if name == valid {
			return true
		}
	}
	return false
}

func isValidModel(model string) bool {
	for _, valid := range validModels {
		if model == valid {
			return true
		}
	}
	return false
}
