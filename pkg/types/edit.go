package types

import "time"

// EditType distinguishes the three kinds of text edits.
type EditType int

const (
	Insert EditType = iota
	Replace
	Delete
)

func (t EditType) String() string {
	switch t {
	case Insert:
		return "insert"
	case Replace:
		return "replace"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// TextEdit is a single located change. OriginalText is the content expected
// at Location when the edit is applied; a mismatch means the buffer has
// drifted and the edit is skipped rather than applied blindly.
//
// Priority is the only sequencing signal: higher values are applied first.
// Edits are computed against the original text, so dependent edits must be
// strictly ordered by priority (insert before replace, replace before delete).
type TextEdit struct {
	FilePath     string    `json:"file_path,omitempty"` // empty means the file under refactor
	Type         EditType  `json:"edit_type"`
	Location     CodeRange `json:"location"`
	OriginalText string    `json:"original_text"`
	NewText      string    `json:"new_text"`
	Priority     uint      `json:"priority"`
	Description  string    `json:"description"`
}

// ValidationKind names a post-apply check category.
type ValidationKind int

const (
	SyntaxCheck ValidationKind = iota
	TypeCheck
)

func (k ValidationKind) String() string {
	switch k {
	case SyntaxCheck:
		return "syntax_check"
	case TypeCheck:
		return "type_check"
	default:
		return "unknown"
	}
}

// ValidationRule asks the caller to run a check after applying the plan.
// Only SyntaxCheck is currently executed by the engine.
type ValidationRule struct {
	Kind        ValidationKind    `json:"kind"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params,omitempty"`
}

// PlanMetadata carries audit/replay information for an EditPlan.
type PlanMetadata struct {
	IntentName      string         `json:"intent_name"`
	IntentArguments map[string]any `json:"intent_arguments,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Complexity      int            `json:"complexity"` // 0-10
	ImpactAreas     []string       `json:"impact_areas,omitempty"`
	Consolidation   string         `json:"consolidation,omitempty"`
}

// EditPlan is a reviewable, language-agnostic description of one refactor:
// a set of located edits plus the checks that must pass afterwards.
type EditPlan struct {
	SourceFile        string           `json:"source_file"`
	Edits             []TextEdit       `json:"edits"`
	DependencyUpdates []string         `json:"dependency_updates,omitempty"`
	Validations       []ValidationRule `json:"validations,omitempty"`
	Metadata          PlanMetadata     `json:"metadata"`
}

// ApplyStats reports what happened when a plan was applied.
type ApplyStats struct {
	AppliedCount int `json:"applied_count"`
	SkippedCount int `json:"skipped_count"`
}
