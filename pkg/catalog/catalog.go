package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/maxepunk/agentscan/pkg/agents"
)

const bannerWidth = 80

// Group pairs a category with the records classified into it.
type Group struct {
	Category Category
	Records  []agents.Record
}

// Catalog holds discovered agent records in discovery order. All views
// derive from that order; the catalog never reorders records.
type Catalog struct {
	records []agents.Record
}

// New builds a catalog over the given records.
func New(records []agents.Record) *Catalog {
	return &Catalog{records: records}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the records in discovery order.
func (c *Catalog) Records() []agents.Record {
	return c.records
}

// Groups partitions the records by category. Groups follow taxonomy
// order with empty categories omitted; records keep discovery order
// within each group.
func (c *Catalog) Groups() []Group {
	byCategory := make(map[Category][]agents.Record)
	for _, rec := range c.records {
		category := Classify(rec.Name, rec.Description)
		byCategory[category] = append(byCategory[category], rec)
	}

	var groups []Group
	for _, category := range Categories {
		if recs := byCategory[category]; len(recs) > 0 {
			groups = append(groups, Group{Category: category, Records: recs})
		}
	}
	return groups
}

// StrongTriggers returns the records whose description announces an
// automatic trigger. The match is case-sensitive: only the emphatic
// upper-case forms count.
func (c *Catalog) StrongTriggers() []agents.Record {
	var strong []agents.Record
	for _, rec := range c.records {
		if strings.Contains(rec.Description, "PROACTIVE") || strings.Contains(rec.Description, "MUST BE USED") {
			strong = append(strong, rec)
		}
	}
	return strong
}

// RenderJSON writes the flat record list as indented JSON in discovery
// order, never grouped. An empty catalog renders as [].
func (c *Catalog) RenderJSON(w io.Writer) error {
	records := c.records
	if records == nil {
		records = []agents.Record{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode agent catalog")
	}
	_, err = fmt.Fprintln(w, string(data))
	return errors.Wrap(err, "failed to write agent catalog")
}

// RenderText writes the categorized catalog: a discovery banner followed
// by one block per non-empty category.
func (c *Catalog) RenderText(w io.Writer) error {
	if len(c.records) == 0 {
		_, err := fmt.Fprintln(w, "No agents found.")
		return errors.Wrap(err, "failed to write agent catalog")
	}

	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "DISCOVERED %d SUBAGENTS\n", len(c.records))
	fmt.Fprintf(&b, "%s\n\n", banner)

	for _, group := range c.Groups() {
		fmt.Fprintf(&b, "\n%s (%d agents)\n", group.Category.Display(), len(group.Records))
		fmt.Fprintln(&b, strings.Repeat("-", bannerWidth))

		for _, rec := range group.Records {
			fmt.Fprintf(&b, "\n📦 %s\n", rec.Name)
			fmt.Fprintf(&b, "   Location: %s\n", rec.Location)
			fmt.Fprintf(&b, "   Description: %s\n", rec.Description)
			fmt.Fprintf(&b, "   Tools: %s\n", formatRawValue(rec.Tools))
			fmt.Fprintf(&b, "   Model: %s\n", formatRawValue(rec.Model))
			fmt.Fprintf(&b, "   Path: %s\n", rec.FilePath)
		}
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write agent catalog")
}

// RenderUsageSummary writes the invocation help block plus the list of
// strongly triggered agents, when any exist.
func (c *Catalog) RenderUsageSummary(w io.Writer) error {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintln(&b, "USAGE SUMMARY")
	fmt.Fprintf(&b, "%s\n\n", banner)

	fmt.Fprintln(&b, "To use an agent, either:")
	fmt.Fprintln(&b, "  1. Let Claude automatically invoke based on task context")
	fmt.Fprintln(&b, "  2. Explicitly request: 'Use the <agent-name> subagent to...'")
	fmt.Fprintln(&b, "  3. Via Task tool: Task(name='agent-name', prompt='...')")
	fmt.Fprintln(&b)

	if strong := c.StrongTriggers(); len(strong) > 0 {
		fmt.Fprintf(&b, "Agents with strong automatic triggers (%d):\n", len(strong))
		for _, rec := range strong {
			fmt.Fprintf(&b, "  • %s\n", rec.Name)
		}
	}
	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write usage summary")
}

// formatRawValue renders a raw front-matter value for the text catalog.
// Lists are comma-joined and explicit nulls print as None. Everything
// else prints as-is.
func formatRawValue(value any) string {
	switch v := value.(type) {
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	case nil:
		return "None"
	default:
		return fmt.Sprint(v)
	}
}
