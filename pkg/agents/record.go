package agents

import "unicode/utf8"

// Location values distinguish which scan root produced a record.
const (
	LocationProject = "project"
	LocationUser    = "user"
)

// Defaults substituted for front-matter fields that are absent or, for
// name and description, not plain strings.
const (
	DefaultDescription = "No description provided"
	DefaultTools       = "All tools (inherited)"
	DefaultModel       = "Inherited from main"
)

// previewLimit caps the system prompt preview; longer bodies are
// truncated to previewLimit-3 runes plus an ellipsis.
const previewLimit = 200

// Record is the catalog view of one discovered agent definition. Tools
// and Model carry the raw YAML values so a misshapen field (a string
// where a list is expected, say) survives into the catalog unchanged.
type Record struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Tools         any    `json:"tools"`
	Model         any    `json:"model"`
	FilePath      string `json:"file_path"`
	Location      string `json:"location"`
	PromptPreview string `json:"system_prompt_preview"`
}

// NewRecord builds the catalog record for a parsed document. stem is the
// filename without extension, used when the front-matter has no usable
// name; location is LocationProject or LocationUser.
func NewRecord(doc *Document, stem, location string) Record {
	rec := Record{
		Name:          stem,
		Description:   DefaultDescription,
		Tools:         DefaultTools,
		Model:         DefaultModel,
		FilePath:      doc.SourcePath,
		Location:      location,
		PromptPreview: previewOf(doc.Body),
	}

	if name, ok := doc.Metadata["name"].(string); ok {
		rec.Name = name
	}
	if description, ok := doc.Metadata["description"].(string); ok {
		rec.Description = description
	}
	if tools, ok := doc.Metadata["tools"]; ok {
		rec.Tools = tools
	}
	if model, ok := doc.Metadata["model"]; ok {
		rec.Model = model
	}

	return rec
}

func previewOf(body string) string {
	if utf8.RuneCountInString(body) <= previewLimit {
		return body
	}
	runes := []rune(body)
	return string(runes[:previewLimit-3]) + "..."
}
