package overlay

// AugmentRequest represents a request to regenerate overlays for a deck
type AugmentRequest struct {
	DeckID   string            `json:"deck_id"`
	Job      string            `json:"job"` // augment
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AugmentResponse represents the response from triggering augmentation
type AugmentResponse struct {
	RunID           string `json:"run_id"`
	OpCount         int    `json:"op_count,omitempty"`
	DedupeSeenCount int    `json:"dedupe_seen_count"`
}

// JobType constants
const (
	JobAugment = "augment"
)

// Overlay element families. The element ID convention is
// <family>_<slideID>_<token>; the prefix is the primary key used to
// recognize generated elements on the next run.
const (
	FamilyProgress   = "progress"
	FamilyProgressBG = "progress_bg"
	FamilyBefore     = "before"
	FamilyAfter      = "after"
	FamilyLabel      = "label"
	FamilyOutline    = "outline"
	FamilyFooter     = "footer"
)

// Reserved element labels, the secondary deletion key for elements whose
// family prefix alone is not sufficient.
const (
	LabelProgress   = "PROGRESS"
	LabelProgressBG = "PROGRESS_BG"
	LabelMainTitle  = "MAIN_TITLE"
)

// Families returns all overlay element families.
func Families() []string {
	return []string{
		FamilyProgress,
		FamilyProgressBG,
		FamilyBefore,
		FamilyAfter,
		FamilyLabel,
		FamilyOutline,
		FamilyFooter,
	}
}

// ElementID builds an overlay element identifier following the
// <family>_<slideID>_<token> convention.
func ElementID(family, slideID, token string) string {
	return family + "_" + slideID + "_" + token
}
