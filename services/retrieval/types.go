package retrieval

// Source tags where the retrieved context came from.
type Source string

const (
	SourceNone             Source = "none"
	SourceInternalDatabase Source = "internal_database"
	SourceExternalSearch   Source = "external_search"
)

// Label returns the human-readable source name used in prompts.
func (s Source) Label() string {
	switch s {
	case SourceInternalDatabase:
		return "Internal Database"
	case SourceExternalSearch:
		return "External Search"
	default:
		return "None"
	}
}

// ContextBundle is the retrieval result handed to the answer generator.
// Text is empty iff Source is SourceNone.
type ContextBundle struct {
	Text   string
	Source Source
}

// StepResult records the outcome of one retrieval step so the fallback
// chain stays auditable instead of being swallowed by error handling.
type StepResult struct {
	Step   string
	Used   bool
	Detail string
}

// Outcome is the bundle plus the per-step record of how it was reached.
type Outcome struct {
	Bundle ContextBundle
	Steps  []StepResult
}
