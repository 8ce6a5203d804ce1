package overlay

// Color is an RGB triple with each channel in [0, 1].
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// Geometry positions an element on a slide, in page units.
type Geometry struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Transform is an affine transform applied to an element:
//
//	x' = ScaleX*x + ShearX*y + TranslateX
//	y' = ShearY*x + ScaleY*y + TranslateY
type Transform struct {
	ScaleX     float64 `json:"scale_x"`
	ShearX     float64 `json:"shear_x"`
	ShearY     float64 `json:"shear_y"`
	ScaleY     float64 `json:"scale_y"`
	TranslateX float64 `json:"translate_x"`
	TranslateY float64 `json:"translate_y"`
}

// Shape kinds
const (
	ShapeRect    = "rect"
	ShapeTextBox = "text_box"
)

// Content and paragraph alignment values
const (
	AlignCenter   = "center"
	ContentMiddle = "middle"
)

// Bullet presets
const (
	BulletDisc = "disc"
)

// Op is one mutation operation for the external apply-mutations call.
// Exactly one field is set; the batch is applied as a single ordered unit.
type Op struct {
	CreateShape       *CreateShapeOp       `json:"create_shape,omitempty"`
	UpdateShapeStyle  *UpdateShapeStyleOp  `json:"update_shape_style,omitempty"`
	SetElementLabel   *SetElementLabelOp   `json:"set_element_label,omitempty"`
	InsertText        *InsertTextOp        `json:"insert_text,omitempty"`
	SetTextStyle      *SetTextStyleOp      `json:"set_text_style,omitempty"`
	SetParagraphStyle *SetParagraphStyleOp `json:"set_paragraph_style,omitempty"`
	SetBulletFormat   *SetBulletFormatOp   `json:"set_bullet_format,omitempty"`
	DeleteElement     *DeleteElementOp     `json:"delete_element,omitempty"`
}

// CreateShapeOp creates a shape on a slide. Family carries the generator
// family as structured metadata so consumers do not need to parse the
// element ID or label to classify generated content.
type CreateShapeOp struct {
	ElementID        string    `json:"element_id"`
	SlideID          string    `json:"slide_id"`
	Kind             string    `json:"kind"`
	Family           string    `json:"family,omitempty"`
	Geometry         Geometry  `json:"geometry"`
	Transform        Transform `json:"transform"`
	ContentAlignment string    `json:"content_alignment,omitempty"`
}

// UpdateShapeStyleOp sets fill and border styling on an element.
type UpdateShapeStyleOp struct {
	ElementID    string  `json:"element_id"`
	Fill         *Color  `json:"fill,omitempty"`
	BorderColor  *Color  `json:"border_color,omitempty"`
	BorderWeight float64 `json:"border_weight,omitempty"`
}

// SetElementLabelOp attaches a semantic label to an element.
type SetElementLabelOp struct {
	ElementID string `json:"element_id"`
	Label     string `json:"label"`
}

// InsertTextOp inserts text into a text-bearing element.
type InsertTextOp struct {
	ElementID string `json:"element_id"`
	Text      string `json:"text"`
}

// SetTextStyleOp styles the full text range of an element. LinkSlideID,
// when set, attaches a navigation link targeting that slide.
type SetTextStyleOp struct {
	ElementID   string  `json:"element_id"`
	FontSize    float64 `json:"font_size,omitempty"`
	Bold        bool    `json:"bold,omitempty"`
	Underline   bool    `json:"underline,omitempty"`
	Color       *Color  `json:"color,omitempty"`
	LinkSlideID string  `json:"link_slide_id,omitempty"`
}

// SetParagraphStyleOp sets paragraph alignment for the full text range.
type SetParagraphStyleOp struct {
	ElementID string `json:"element_id"`
	Alignment string `json:"alignment"`
}

// SetBulletFormatOp applies a bullet preset to the full text range.
type SetBulletFormatOp struct {
	ElementID string `json:"element_id"`
	Preset    string `json:"preset"`
}

// DeleteElementOp removes an element from the deck.
type DeleteElementOp struct {
	ElementID string `json:"element_id"`
}

// MutationBatch is the full ordered operation set submitted for one run.
type MutationBatch struct {
	DeckID string `json:"deck_id"`
	Ops    []Op   `json:"ops"`
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Rotate90 returns a 90-degree rotation about the element origin.
func Rotate90() Transform {
	return Transform{ShearX: -1, ShearY: 1}
}
