package mathtext

// Retexter is a text region whose content can be read back and replaced.
type Retexter interface {
	Text() string
	SetText(text string)
}

// Typesetter renders the math in a fixed set of regions in place.
type Typesetter struct {
	regions []Retexter
}

// Typeset rewrites every region through Render.
func (t *Typesetter) Typeset() {
	for _, r := range t.regions {
		r.SetText(Render(r.Text()))
	}
}

// Over returns a Typesetter over a slice of any concrete region type.
func Over[R Retexter](regions []R) *Typesetter {
	t := &Typesetter{regions: make([]Retexter, len(regions))}
	for i, r := range regions {
		t.regions[i] = r
	}
	return t
}
