package deckapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/decks/deck-1/document":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"deck_id": "deck-1",
				"page_width": 720,
				"page_height": 405,
				"slides": [
					{"id": "s0", "layout": "TITLE", "shapes": [{"id": "t0", "kind": "text_box", "text": "Hello"}]},
					{"id": "s1", "layout": ""}
				]
			}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	t.Run("decodes the document", func(t *testing.T) {
		doc, err := c.GetDocument(context.Background(), "deck-1")
		require.NoError(t, err)

		w, h := doc.PageSize()
		assert.Equal(t, 720.0, w)
		assert.Equal(t, 405.0, h)

		slides := doc.Slides()
		require.Len(t, slides, 2)
		assert.Equal(t, "s0", slides[0].ID())
		require.Len(t, slides[0].Shapes(), 1)
		assert.Equal(t, "Hello", slides[0].Shapes()[0].Text())
	})

	t.Run("missing deck", func(t *testing.T) {
		_, err := c.GetDocument(context.Background(), "deck-404")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "deck not found")
	})
}

func TestSubmitBatch(t *testing.T) {
	t.Run("posts one batch to batchUpdate", func(t *testing.T) {
		var got overlay.MutationBatch
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/decks/deck-1/batchUpdate", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		ops := []overlay.Op{
			{DeleteElement: &overlay.DeleteElementOp{ElementID: "progress_s1_old"}},
			{CreateShape: &overlay.CreateShapeOp{
				ElementID: "progress_s1_new",
				SlideID:   "s1",
				Kind:      overlay.ShapeRect,
				Family:    overlay.FamilyProgress,
				Transform: overlay.Identity(),
			}},
		}
		err := New(srv.URL).SubmitBatch(context.Background(), "deck-1", ops)
		require.NoError(t, err)

		assert.Equal(t, "deck-1", got.DeckID)
		require.Len(t, got.Ops, 2)
		require.NotNil(t, got.Ops[0].DeleteElement)
		require.NotNil(t, got.Ops[1].CreateShape)
		assert.Equal(t, "progress_s1_new", got.Ops[1].CreateShape.ElementID)
		assert.Nil(t, got.Ops[1].DeleteElement)
	})

	t.Run("non-2xx is terminal", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "conflicting revision", http.StatusConflict)
		}))
		defer srv.Close()

		err := New(srv.URL).SubmitBatch(context.Background(), "deck-1", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "409")
		assert.Contains(t, err.Error(), "conflicting revision")
	})
}
