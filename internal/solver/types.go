package solver

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

// Variant identifies one of the two backend model configurations.
type Variant string

const (
	VariantBase      Variant = "base"
	VariantOptimized Variant = "optimized"
)

// Variants lists every variant in dispatch order.
var Variants = [...]Variant{VariantBase, VariantOptimized}

// Valid reports whether v is a known variant.
func (v Variant) Valid() bool {
	return v == VariantBase || v == VariantOptimized
}

// Label returns the human-readable panel title for v.
func (v Variant) Label() string {
	switch v {
	case VariantBase:
		return "Base model"
	case VariantOptimized:
		return "Optimized model"
	default:
		return string(v)
	}
}

// ParseVariant converts s into a Variant.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	if !v.Valid() {
		return "", fmt.Errorf("unknown model variant %q", s)
	}
	return v, nil
}

// Request is the body of POST /solve/{variant}.
type Request struct {
	Problem string `json:"problem"`
}

// Result is the success body of POST /solve/{variant}.
type Result struct {
	Reasoning     string  `json:"reasoning"`
	Answer        string  `json:"answer"`
	ExecutionTime Seconds `json:"execution_time"`
}

// Status is the body of GET /status.
type Status struct {
	BaseLoaded      bool `json:"base_model_loaded"`
	OptimizedLoaded bool `json:"optimized_model_loaded"`
}

// Loaded reports whether the given variant is loaded on the server.
func (s Status) Loaded(v Variant) bool {
	switch v {
	case VariantBase:
		return s.BaseLoaded
	case VariantOptimized:
		return s.OptimizedLoaded
	}
	return false
}

// errorBody is the failure body returned alongside non-2xx statuses.
// Detail is usually a string but validation failures may carry a list.
type errorBody struct {
	Detail any `json:"detail"`
}

// Seconds is an execution time kept in the textual form the server sent.
// It decodes from a JSON number or string and encodes numeric text as a
// JSON number.
type Seconds string

// SecondsOf rounds d to hundredths of a second.
func SecondsOf(d time.Duration) Seconds {
	rounded := math.Round(d.Seconds()*100) / 100
	return Seconds(strconv.FormatFloat(rounded, 'f', -1, 64))
}

func (s Seconds) String() string {
	return string(s)
}

func (s *Seconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*s = ""
		return nil
	case data[0] == '"':
		var text string
		if err := sonic.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decode execution_time: %w", err)
		}
		*s = Seconds(text)
		return nil
	}

	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return fmt.Errorf("decode execution_time %s: not a number", data)
	}
	*s = Seconds(data)
	return nil
}

func (s Seconds) MarshalJSON() ([]byte, error) {
	if s != "" {
		if _, err := strconv.ParseFloat(string(s), 64); err == nil {
			return []byte(s), nil
		}
	}
	return []byte(strconv.Quote(string(s))), nil
}
