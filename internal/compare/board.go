package compare

import "github.com/abhisek/mathduel/internal/solver"

// Region is an in-memory display region. It implements every handle
// interface so one type can back any slot of a Board.
type Region struct {
	text    string
	marked  bool
	visible bool
}

func (r *Region) SetText(text string)     { r.text = text }
func (r *Region) Text() string            { return r.text }
func (r *Region) SetMarked(marked bool)   { r.marked = marked }
func (r *Region) Marked() bool            { return r.marked }
func (r *Region) SetVisible(visible bool) { r.visible = visible }
func (r *Region) Visible() bool           { return r.visible }

// PanelRegions holds one variant's regions.
type PanelRegions struct {
	Reasoning Region
	Answer    Region
	Time      Region
}

// Board is the display state shared by the controller and a renderer.
type Board struct {
	Loading   Region
	Error     Region
	Base      PanelRegions
	Optimized PanelRegions
}

// NewBoard returns a board in its reset state.
func NewBoard() *Board {
	b := &Board{}
	b.Base.Time.SetText(TimePlaceholder)
	b.Optimized.Time.SetText(TimePlaceholder)
	return b
}

// Panel returns the regions of variant v.
func (b *Board) Panel(v solver.Variant) *PanelRegions {
	if v == solver.VariantOptimized {
		return &b.Optimized
	}
	return &b.Base
}

// Handles binds the board's regions and the given input into Handles.
func (b *Board) Handles(in Input) Handles {
	return Handles{
		Input:     in,
		Loading:   &b.Loading,
		Error:     &b.Error,
		Base:      b.Base.handles(),
		Optimized: b.Optimized.handles(),
	}
}

// TextRegions returns the regions a typesetting pass should rewrite.
func (b *Board) TextRegions() []*Region {
	return []*Region{
		&b.Base.Reasoning, &b.Base.Answer,
		&b.Optimized.Reasoning, &b.Optimized.Answer,
	}
}

func (p *PanelRegions) handles() Panel {
	return Panel{Reasoning: &p.Reasoning, Answer: &p.Answer, Time: &p.Time}
}

// Field is a plain Input holding a fixed value.
type Field struct {
	value string
}

// NewField returns a Field holding value.
func NewField(value string) *Field { return &Field{value: value} }

func (f *Field) Value() string         { return f.value }
func (f *Field) SetValue(value string) { f.value = value }
