package deck

import (
	"fmt"

	"github.com/slidecraft/deck-overlay-pipeline/pkg/overlay"
)

// ShapeData is the stored state of one shape in a deck file.
type ShapeData struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Text       string `json:"text,omitempty"`
	ShapeLabel string `json:"label,omitempty"`
	Family     string `json:"family,omitempty"`

	Geometry  overlay.Geometry  `json:"geometry,omitempty"`
	Transform overlay.Transform `json:"transform,omitempty"`

	Fill         *overlay.Color `json:"fill,omitempty"`
	BorderColor  *overlay.Color `json:"border_color,omitempty"`
	BorderWeight float64        `json:"border_weight,omitempty"`

	FontSize    float64        `json:"font_size,omitempty"`
	Bold        bool           `json:"bold,omitempty"`
	Underline   bool           `json:"underline,omitempty"`
	TextColor   *overlay.Color `json:"text_color,omitempty"`
	LinkSlideID string         `json:"link_slide_id,omitempty"`

	Alignment        string `json:"alignment,omitempty"`
	ContentAlignment string `json:"content_alignment,omitempty"`
	Bullet           string `json:"bullet,omitempty"`
}

// SlideData is the stored state of one slide in a deck file.
type SlideData struct {
	ID     string      `json:"id"`
	Layout string      `json:"layout"`
	Shapes []ShapeData `json:"shapes,omitempty"`
}

// DeckFile is the JSON representation of a deck.
type DeckFile struct {
	DeckID     string      `json:"deck_id"`
	PageWidth  float64     `json:"page_width"`
	PageHeight float64     `json:"page_height"`
	Slides     []SlideData `json:"slides"`
}

// MemoryDocument is an in-memory deck implementing both the read-only
// Document interface and the apply-mutations side of the external
// interface. It backs the standalone mode and the pipeline tests.
type MemoryDocument struct {
	file *DeckFile
}

// NewMemoryDocument wraps a deck file in an in-memory document.
func NewMemoryDocument(file *DeckFile) *MemoryDocument {
	return &MemoryDocument{file: file}
}

// File returns the underlying deck file.
func (d *MemoryDocument) File() *DeckFile {
	return d.file
}

// PageSize implements Document.
func (d *MemoryDocument) PageSize() (float64, float64) {
	return d.file.PageWidth, d.file.PageHeight
}

// Slides implements Document.
func (d *MemoryDocument) Slides() []SlideSource {
	out := make([]SlideSource, len(d.file.Slides))
	for i := range d.file.Slides {
		out[i] = &memSlide{slide: &d.file.Slides[i]}
	}
	return out
}

type memSlide struct {
	slide *SlideData
}

func (s *memSlide) ID() string     { return s.slide.ID }
func (s *memSlide) Layout() string { return s.slide.Layout }

func (s *memSlide) Shapes() []ShapeSource {
	out := make([]ShapeSource, len(s.slide.Shapes))
	for i := range s.slide.Shapes {
		out[i] = &memShape{shape: &s.slide.Shapes[i]}
	}
	return out
}

type memShape struct {
	shape *ShapeData
}

func (s *memShape) ID() string    { return s.shape.ID }
func (s *memShape) Kind() string  { return s.shape.Kind }
func (s *memShape) Text() string  { return s.shape.Text }
func (s *memShape) Label() string { return s.shape.ShapeLabel }

// Apply applies one mutation batch as a single ordered unit. A failed
// lookup aborts the batch with an error; there is no partial rollback,
// matching the external interface this document stands in for.
func (d *MemoryDocument) Apply(ops []overlay.Op) error {
	for i, op := range ops {
		if err := d.applyOne(op); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	return nil
}

func (d *MemoryDocument) applyOne(op overlay.Op) error {
	switch {
	case op.DeleteElement != nil:
		return d.deleteElement(op.DeleteElement.ElementID)
	case op.CreateShape != nil:
		return d.createShape(op.CreateShape)
	case op.UpdateShapeStyle != nil:
		sh, err := d.findShape(op.UpdateShapeStyle.ElementID)
		if err != nil {
			return err
		}
		sh.Fill = op.UpdateShapeStyle.Fill
		sh.BorderColor = op.UpdateShapeStyle.BorderColor
		sh.BorderWeight = op.UpdateShapeStyle.BorderWeight
		return nil
	case op.SetElementLabel != nil:
		sh, err := d.findShape(op.SetElementLabel.ElementID)
		if err != nil {
			return err
		}
		sh.ShapeLabel = op.SetElementLabel.Label
		return nil
	case op.InsertText != nil:
		sh, err := d.findShape(op.InsertText.ElementID)
		if err != nil {
			return err
		}
		sh.Text = op.InsertText.Text
		return nil
	case op.SetTextStyle != nil:
		sh, err := d.findShape(op.SetTextStyle.ElementID)
		if err != nil {
			return err
		}
		sh.FontSize = op.SetTextStyle.FontSize
		sh.Bold = op.SetTextStyle.Bold
		sh.Underline = op.SetTextStyle.Underline
		sh.TextColor = op.SetTextStyle.Color
		sh.LinkSlideID = op.SetTextStyle.LinkSlideID
		return nil
	case op.SetParagraphStyle != nil:
		sh, err := d.findShape(op.SetParagraphStyle.ElementID)
		if err != nil {
			return err
		}
		sh.Alignment = op.SetParagraphStyle.Alignment
		return nil
	case op.SetBulletFormat != nil:
		sh, err := d.findShape(op.SetBulletFormat.ElementID)
		if err != nil {
			return err
		}
		sh.Bullet = op.SetBulletFormat.Preset
		return nil
	}
	return fmt.Errorf("empty mutation operation")
}

func (d *MemoryDocument) createShape(op *overlay.CreateShapeOp) error {
	for i := range d.file.Slides {
		if d.file.Slides[i].ID != op.SlideID {
			continue
		}
		d.file.Slides[i].Shapes = append(d.file.Slides[i].Shapes, ShapeData{
			ID:               op.ElementID,
			Kind:             op.Kind,
			Family:           op.Family,
			Geometry:         op.Geometry,
			Transform:        op.Transform,
			ContentAlignment: op.ContentAlignment,
		})
		return nil
	}
	return fmt.Errorf("slide not found: %s", op.SlideID)
}

func (d *MemoryDocument) deleteElement(elementID string) error {
	for i := range d.file.Slides {
		shapes := d.file.Slides[i].Shapes
		for j := range shapes {
			if shapes[j].ID == elementID {
				d.file.Slides[i].Shapes = append(shapes[:j:j], shapes[j+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("element not found: %s", elementID)
}

func (d *MemoryDocument) findShape(elementID string) (*ShapeData, error) {
	for i := range d.file.Slides {
		shapes := d.file.Slides[i].Shapes
		for j := range shapes {
			if shapes[j].ID == elementID {
				return &shapes[j], nil
			}
		}
	}
	return nil, fmt.Errorf("element not found: %s", elementID)
}
