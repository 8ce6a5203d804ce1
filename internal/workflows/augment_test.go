package workflows

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/slidecraft/deck-overlay-pipeline/internal/deck"
	"github.com/slidecraft/deck-overlay-pipeline/internal/resources"
	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryService serves one in-memory deck as both the reader and the
// batch submitter, the same shape the standalone binary uses.
type memoryService struct {
	doc     *deck.MemoryDocument
	submits int
}

func (m *memoryService) GetDocument(_ context.Context, deckID string) (deck.Document, error) {
	if deckID != m.doc.File().DeckID {
		return nil, fmt.Errorf("deck not found: %s", deckID)
	}
	return m.doc, nil
}

func (m *memoryService) SubmitBatch(_ context.Context, _ string, ops []overlay.Op) error {
	m.submits++
	return m.doc.Apply(ops)
}

type failingSubmitter struct{ err error }

func (f *failingSubmitter) SubmitBatch(context.Context, string, []overlay.Op) error {
	return f.err
}

func sampleFile() *deck.DeckFile {
	slide := func(id, layout, text string) deck.SlideData {
		sl := deck.SlideData{ID: id, Layout: layout}
		if text != "" {
			sl.Shapes = []deck.ShapeData{{ID: id + "_t", Kind: overlay.ShapeTextBox, Text: text}}
		}
		return sl
	}
	return &deck.DeckFile{
		DeckID:     "deck-1",
		PageWidth:  720,
		PageHeight: 405,
		Slides: []deck.SlideData{
			slide("s0", deck.LayoutTitle, "Quarterly Roadmap"),
			slide("s1", "", "Outline"),
			slide("s2", deck.LayoutSectionHeader, "Discovery"),
			slide("s3", "", "Findings"),
			slide("s4", deck.LayoutSectionHeader, "Delivery"),
		},
	}
}

func wctx(deckID string) *WorkflowContext {
	return &WorkflowContext{
		Ctx:   context.Background(),
		RunID: "test-run",
		Request: overlay.AugmentRequest{
			DeckID: deckID,
			Job:    overlay.JobAugment,
		},
	}
}

// overlayProfile is the deck's generated content with the random ID
// tokens stripped, so two runs can be compared structurally.
func overlayProfile(file *deck.DeckFile) []string {
	var out []string
	for _, sl := range file.Slides {
		for _, sh := range sl.Shapes {
			if sh.Family == "" {
				continue
			}
			out = append(out, fmt.Sprintf("%s/%s/%s/%v", sl.ID, sh.Family, sh.Text, sh.Geometry))
		}
	}
	sort.Strings(out)
	return out
}

func TestAugmentWorkflowExecute(t *testing.T) {
	t.Run("applies one batch and reports counts", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		res, err := w.Execute(wctx("deck-1"))
		require.NoError(t, err)
		require.True(t, res.Success)

		assert.Equal(t, 1, svc.submits)
		assert.Equal(t, 5, res.Outputs["slides"])
		assert.Equal(t, 2, res.Outputs["sections"])
		assert.NotEmpty(t, overlayProfile(svc.doc.File()))
	})

	t.Run("re-running converges", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		_, err := w.Execute(wctx("deck-1"))
		require.NoError(t, err)
		first := overlayProfile(svc.doc.File())

		_, err = w.Execute(wctx("deck-1"))
		require.NoError(t, err)
		second := overlayProfile(svc.doc.File())

		assert.Equal(t, first, second)
	})

	t.Run("empty deck is skipped without submitting", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(&deck.DeckFile{DeckID: "deck-1"})}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		res, err := w.Execute(wctx("deck-1"))
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, true, res.Outputs["skipped"])
		assert.Zero(t, svc.submits)
	})

	t.Run("missing deck id fails validation", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		res, err := w.Execute(wctx(""))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.False(t, res.Success)
	})

	t.Run("unsupported job fails validation", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		ctx := wctx("deck-1")
		ctx.Request.Job = "transcode"
		_, err := w.Execute(ctx)
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("unknown deck fails the run", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		w := NewAugmentWorkflow(svc, svc, resources.NewCache(nil))

		res, err := w.Execute(wctx("deck-404"))
		require.Error(t, err)
		assert.False(t, res.Success)
	})

	t.Run("submit failure is terminal", func(t *testing.T) {
		svc := &memoryService{doc: deck.NewMemoryDocument(sampleFile())}
		boom := errors.New("batch rejected")
		w := NewAugmentWorkflow(svc, &failingSubmitter{err: boom}, resources.NewCache(nil))

		res, err := w.Execute(wctx("deck-1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.False(t, res.Success)
	})
}
