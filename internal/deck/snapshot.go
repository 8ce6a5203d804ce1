package deck

// ShapeRef is the captured state of one shape.
type ShapeRef struct {
	ID    string
	Kind  string
	Text  string
	Label string
}

// SlideRef is the captured state of one slide.
type SlideRef struct {
	ID     string
	Layout string
	Shapes []ShapeRef
}

// Snapshot is a one-shot capture of page geometry and ordered slide state.
// It is built once per pipeline invocation and never mutated; every
// downstream component reads the snapshot instead of the live document.
type Snapshot struct {
	Width  float64
	Height float64
	Slides []SlideRef
}

// Capture reads the document once and returns an immutable snapshot.
// Slide 0's layout is never consulted downstream, so its layout read is
// skipped.
func Capture(doc Document) *Snapshot {
	width, height := doc.PageSize()
	snap := &Snapshot{Width: width, Height: height}

	for i, sl := range doc.Slides() {
		ref := SlideRef{ID: sl.ID()}
		if i > 0 {
			ref.Layout = sl.Layout()
		}
		for _, sh := range sl.Shapes() {
			ref.Shapes = append(ref.Shapes, ShapeRef{
				ID:    sh.ID(),
				Kind:  sh.Kind(),
				Text:  sh.Text(),
				Label: sh.Label(),
			})
		}
		snap.Slides = append(snap.Slides, ref)
	}

	return snap
}

// Empty reports whether the deck has no slides. An empty snapshot is a
// no-op for every downstream component, not an error.
func (s *Snapshot) Empty() bool {
	return len(s.Slides) == 0
}

// SlideCount returns the number of captured slides.
func (s *Snapshot) SlideCount() int {
	return len(s.Slides)
}
