// Package catalog groups discovered agent records into a fixed purpose
// taxonomy and renders text and JSON views of the result.
package catalog

import "strings"

// Category is one bucket of the fixed purpose taxonomy.
type Category string

// The taxonomy. Other is the fallback and carries no keywords.
const (
	CodeAnalysis   Category = "code_analysis"
	Implementation Category = "implementation"
	Testing        Category = "testing"
	Security       Category = "security"
	Performance    Category = "performance"
	Research       Category = "research"
	Documentation  Category = "documentation"
	Infrastructure Category = "infrastructure"
	Data           Category = "data"
	Other          Category = "other"
)

// Categories lists the taxonomy in classification precedence order,
// Other last.
var Categories = []Category{
	CodeAnalysis,
	Implementation,
	Testing,
	Security,
	Performance,
	Research,
	Documentation,
	Infrastructure,
	Data,
	Other,
}

// categoryKeywords drives classification. Order matters: the first
// category with a matching keyword wins, so this is a slice, not a map.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CodeAnalysis, []string{"review", "analyze", "audit", "inspect", "examine"}},
	{Implementation, []string{"implement", "create", "build", "develop", "code", "write"}},
	{Testing, []string{"test", "qa", "coverage", "validation"}},
	{Security, []string{"security", "vulnerability", "auth", "encrypt", "compliance"}},
	{Performance, []string{"performance", "optimize", "profile", "benchmark", "speed"}},
	{Research, []string{"research", "investigate", "explore", "discover", "study"}},
	{Documentation, []string{"document", "doc", "readme", "guide", "explain"}},
	{Infrastructure, []string{"deploy", "infrastructure", "cloud", "kubernetes", "docker"}},
	{Data, []string{"data", "database", "sql", "analytics", "etl"}},
}

// Classify assigns an agent to the first category with a keyword
// occurring as a substring of the case-folded description and name, or
// Other when nothing matches.
func Classify(name, description string) Category {
	text := strings.ToLower(description + " " + name)
	for _, group := range categoryKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.category
			}
		}
	}
	return Other
}

// Display returns the category's catalog heading form, upper case with
// underscores as spaces.
func (c Category) Display() string {
	return strings.ToUpper(strings.ReplaceAll(string(c), "_", " "))
}
