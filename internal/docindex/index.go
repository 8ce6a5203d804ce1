// Package docindex builds the single classified pass over a deck
// snapshot. The deletion pass and every generator read this index, so no
// component re-traverses the slide and shape lists.
package docindex

import (
	"strings"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// SectionEntry is one section-marker slide with its extracted title.
type SectionEntry struct {
	Title      string
	SlideIndex int
	SlideID    string
}

// Index is the classified view of one snapshot. Deterministic: identical
// snapshots yield identical indexes.
type Index struct {
	// Sections lists section-marker slides ascending by slide index.
	// Marker slides with no extractable text are not included.
	Sections []SectionEntry

	// Titles holds the first non-empty trimmed shape text per slide, or
	// "" when the slide has none.
	Titles []string

	// Generated holds, per slide, the IDs of previously generated
	// overlay elements. Generated[0] is always empty: slide 0 is never
	// targeted by the deletion pass.
	Generated [][]string
}

// Build classifies the snapshot in a single pass.
func Build(snap *deck.Snapshot) *Index {
	idx := &Index{
		Titles:    make([]string, len(snap.Slides)),
		Generated: make([][]string, len(snap.Slides)),
	}

	for i, sl := range snap.Slides {
		idx.Titles[i] = FirstText(sl)

		if i > 0 {
			for _, sh := range sl.Shapes {
				if isGenerated(sh) {
					idx.Generated[i] = append(idx.Generated[i], sh.ID)
				}
			}
		}

		if sl.Layout == deck.LayoutSectionHeader && idx.Titles[i] != "" {
			idx.Sections = append(idx.Sections, SectionEntry{
				Title:      idx.Titles[i],
				SlideIndex: i,
				SlideID:    sl.ID,
			})
		}
	}

	return idx
}

// FirstText returns the first non-empty trimmed shape text on the slide,
// scanning shapes in host enumeration order. First match wins.
func FirstText(sl deck.SlideRef) string {
	for _, sh := range sl.Shapes {
		if t := strings.TrimSpace(sh.Text); t != "" {
			return t
		}
	}
	return ""
}

var reservedLabels = map[string]bool{
	overlay.LabelProgress:   true,
	overlay.LabelProgressBG: true,
	overlay.LabelMainTitle:  true,
}

// isGenerated recognizes previously generated overlay elements by the
// family ID prefix or the reserved label.
func isGenerated(sh deck.ShapeRef) bool {
	if reservedLabels[sh.Label] {
		return true
	}
	for _, family := range overlay.Families() {
		if strings.HasPrefix(sh.ID, family+"_") {
			return true
		}
	}
	return false
}
