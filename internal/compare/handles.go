package compare

import (
	"errors"

	"github.com/abhisek/mathduel/internal/solver"
)

// TextSetter is a display region whose content is replaced wholesale.
type TextSetter interface {
	SetText(text string)
}

// Markable is a text region that can carry the "different" marker.
type Markable interface {
	TextSetter
	SetMarked(marked bool)
}

// Toggle is a region that can be shown or hidden.
type Toggle interface {
	SetVisible(visible bool)
}

// ErrorBox is the error container: it holds a message and can be hidden.
type ErrorBox interface {
	TextSetter
	Toggle
}

// Input is the problem input field.
type Input interface {
	Value() string
	SetValue(value string)
}

// Panel groups the display regions of one model variant.
type Panel struct {
	Reasoning TextSetter
	Answer    Markable
	Time      TextSetter
}

// Handles are the UI collaborators the controller writes to. They are
// acquired once at startup and held for the lifetime of the controller.
type Handles struct {
	Input     Input
	Loading   Toggle
	Error     ErrorBox
	Base      Panel
	Optimized Panel
}

func (h Handles) panel(v solver.Variant) Panel {
	if v == solver.VariantOptimized {
		return h.Optimized
	}
	return h.Base
}

func (h Handles) validate() error {
	if h.Input == nil || h.Loading == nil || h.Error == nil {
		return errors.New("input, loading and error handles are required")
	}
	for _, v := range solver.Variants {
		p := h.panel(v)
		if p.Reasoning == nil || p.Answer == nil || p.Time == nil {
			return errors.New("missing display region for " + string(v) + " model")
		}
	}
	return nil
}
