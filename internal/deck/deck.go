package deck

// Document provides read access to a presentation deck
type Document interface {
	// PageSize returns the page width and height in page units
	PageSize() (width, height float64)

	// Slides returns the ordered slide list
	Slides() []SlideSource
}

// SlideSource provides read access to one slide
type SlideSource interface {
	ID() string
	Layout() string
	Shapes() []ShapeSource
}

// ShapeSource provides read access to one shape on a slide
type ShapeSource interface {
	ID() string
	Kind() string
	Text() string
	Label() string
}

// Reserved layout names
const (
	// LayoutSectionHeader marks a slide as a navigational section boundary.
	LayoutSectionHeader = "SECTION_HEADER"

	// LayoutTitle is the conventional layout of slide 0.
	LayoutTitle = "TITLE"
)
