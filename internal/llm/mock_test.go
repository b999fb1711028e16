package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ReturnsCannedResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 5}},
		MockResponse{Content: json.RawMessage(`{"n":2}`)},
	)

	first, err := mock.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"n":1}` {
		t.Fatalf("unexpected first content: %s", first.Content)
	}
	if first.Usage.InputTokens != 5 {
		t.Fatalf("expected 5 input tokens, got %d", first.Usage.InputTokens)
	}

	second, err := mock.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"n":2}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Prompt{})

	var unavailable *ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestMockProvider_Fallback(t *testing.T) {
	mock := NewMockProvider()
	mock.Fallback = json.RawMessage(`{"answer":"42"}`)

	for range 3 {
		resp, err := mock.Complete(context.Background(), Prompt{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(resp.Content) != `{"answer":"42"}` {
			t.Fatalf("unexpected content: %s", resp.Content)
		}
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	prompt := Prompt{System: "solve", Turns: []Turn{User("1+1")}}

	if _, err := mock.Complete(context.Background(), prompt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "solve" || mock.Calls[0].Turns[0].Text != "1+1" {
		t.Fatalf("unexpected recorded prompt: %+v", mock.Calls[0])
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	want := errors.New("boom")
	mock := NewMockProvider(MockResponse{Err: want})

	if _, err := mock.Complete(context.Background(), Prompt{}); !errors.Is(err, want) {
		t.Fatalf("expected configured error, got %v", err)
	}
}

func TestMockProvider_AddResponse(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"late":true}`)})

	resp, err := mock.Complete(context.Background(), Prompt{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"late":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.ModelID() != "mock" || resp.Model != "mock" {
		t.Fatal("expected mock model id")
	}
}

func TestTurnHelpers(t *testing.T) {
	if u := User("q"); u.Role != RoleUser || u.Text != "q" {
		t.Fatalf("unexpected user turn: %+v", u)
	}
	if a := Assistant("a"); a.Role != RoleAssistant || a.Text != "a" {
		t.Fatalf("unexpected assistant turn: %+v", a)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if got := PurposeFrom(ctx); got != "unknown" {
		t.Fatalf("expected 'unknown', got %q", got)
	}

	ctx = WithPurpose(ctx, "solve_base")
	if got := PurposeFrom(ctx); got != "solve_base" {
		t.Fatalf("expected 'solve_base', got %q", got)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFrom(ctx); got != "" {
		t.Fatalf("expected empty request id, got %q", got)
	}

	ctx = WithRequestID(ctx, "req-1")
	if got := RequestIDFrom(ctx); got != "req-1" {
		t.Fatalf("expected 'req-1', got %q", got)
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gpt-4o-mini")
	if c == nil {
		t.Fatal("expected cost for gpt-4o-mini")
	}
	if got := c.Cost(1_000_000, 1_000_000); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if LookupCost("openai/gpt-4o-mini") == nil {
		t.Fatal("expected OpenRouter slug to match")
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
