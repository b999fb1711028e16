// Package program holds the chain-of-thought programs the server runs for
// each model variant: instructions plus optional few-shot demonstrations
// that are rendered into an llm.Prompt.
package program

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/abhisek/mathduel/internal/llm"
)

// DefaultInstructions is used when a program carries none.
const DefaultInstructions = "Given the fields `question`, produce the fields `answer`."

// outputRules is appended to every system prompt.
const outputRules = "Think step by step before answering. Respond with a JSON object " +
	"with the string fields `reasoning` (your step by step work) and `answer` " +
	"(the final answer only)."

// Demo is one worked example shown to the model before the real question.
type Demo struct {
	Question  string `json:"question"`
	Reasoning string `json:"reasoning,omitempty"`
	Answer    string `json:"answer"`
}

// Program is a chain-of-thought signature `question -> reasoning, answer`.
type Program struct {
	Instructions string
	Demos        []Demo
}

// Settings are the generation parameters applied to every run.
type Settings struct {
	MaxTokens   int
	Temperature float64
}

// Output is a parsed model answer.
type Output struct {
	Reasoning string `json:"reasoning"`
	Answer    string `json:"answer"`
}

// AnswerSchema constrains the model to a reasoning and answer object.
var AnswerSchema = &llm.Schema{
	Name:        "reasoned-answer",
	Description: "Step by step reasoning followed by the final answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reasoning": map[string]any{"type": "string"},
			"answer":    map[string]any{"type": "string"},
		},
		"required":             []any{"reasoning", "answer"},
		"additionalProperties": false,
	},
}

// Base returns the zero-shot program.
func Base() *Program {
	return &Program{Instructions: DefaultInstructions}
}

// Prompt renders the program and question into a completion request.
// Demonstrations become alternating user and assistant turns.
func (p *Program) Prompt(question string, s Settings) (llm.Prompt, error) {
	instructions := strings.TrimSpace(p.Instructions)
	if instructions == "" {
		instructions = DefaultInstructions
	}

	turns := make([]llm.Turn, 0, 2*len(p.Demos)+1)
	for i, d := range p.Demos {
		reply, err := marshalReply(Output{Reasoning: d.Reasoning, Answer: d.Answer})
		if err != nil {
			return llm.Prompt{}, fmt.Errorf("encode demo %d: %w", i, err)
		}
		turns = append(turns, llm.User(d.Question), llm.Assistant(reply))
	}
	turns = append(turns, llm.User(question))

	return llm.Prompt{
		System:      instructions + "\n\n" + outputRules,
		Turns:       turns,
		Schema:      AnswerSchema,
		MaxTokens:   s.MaxTokens,
		Temperature: s.Temperature,
	}, nil
}

var marshalReply = sonic.MarshalString

// Run asks provider to answer question with this program.
func (p *Program) Run(ctx context.Context, provider llm.Provider, question string, s Settings) (*Output, error) {
	prompt, err := p.Prompt(question, s)
	if err != nil {
		return nil, err
	}
	resp, err := provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out Output
	if err := sonic.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("decode answer: %w", err)}
	}
	return &out, nil
}

// savedState is the on-disk shape written by the prompt optimizer. The
// fields may sit at the top level or under "predict".
type savedState struct {
	Instructions string      `json:"instructions"`
	Signature    *signature  `json:"signature"`
	Demos        []Demo      `json:"demos"`
	Predict      *savedState `json:"predict"`
}

type signature struct {
	Instructions string `json:"instructions"`
}

// Parse decodes a saved program.
func Parse(data []byte) (*Program, error) {
	var st savedState
	if err := sonic.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode program: %w", err)
	}
	if st.Predict != nil {
		st = *st.Predict
	}

	p := &Program{Instructions: st.Instructions}
	if p.Instructions == "" && st.Signature != nil {
		p.Instructions = st.Signature.Instructions
	}
	for _, d := range st.Demos {
		if strings.TrimSpace(d.Question) == "" {
			continue
		}
		p.Demos = append(p.Demos, d)
	}
	if p.Instructions == "" && len(p.Demos) == 0 {
		return nil, fmt.Errorf("decode program: no instructions or demos")
	}
	return p, nil
}

// Load reads a saved program from path.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	return Parse(data)
}
