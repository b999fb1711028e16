package llm

import (
	"context"
	"testing"
)

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
			"units": map[string]any{"type": "string", "enum": []any{"m", "s"}},
		},
		"required":             []string{"reasoning"},
		"additionalProperties": false,
	})

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["steps"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER items, got %s", schema.Properties["steps"].Items.Type)
	}
	if len(schema.Properties["units"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["units"].Enum))
	}
	if len(schema.Required) != 1 || schema.Required[0] != "reasoning" {
		t.Fatalf("unexpected required list: %v", schema.Required)
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Turn{User("q"), Assistant("a")})
	if contents[0].Role != "user" || contents[1].Role != "model" {
		t.Fatalf("unexpected roles: %q %q", contents[0].Role, contents[1].Role)
	}
	if contents[1].Parts[0].Text != "a" {
		t.Fatalf("unexpected text %q", contents[1].Parts[0].Text)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
