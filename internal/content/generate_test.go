package content

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/seopipe/seopipe/internal/llm"
)

type fakeChat struct {
	response string
	err      error
	lastMsgs []llm.Message
	lastJSON bool
}

func (f *fakeChat) Chat(ctx context.Context, messages []llm.Message, jsonObject bool) (string, error) {
	f.lastMsgs = messages
	f.lastJSON = jsonObject
	return f.response, f.err
}

const validResponse = `{"title": "Go Tips", "body": "# Go Tips\n\nContent.", "summary": "Short.", "meta_description": "Meta."}`

func TestGenerate(t *testing.T) {
	fake := &fakeChat{response: validResponse}

	c, err := Generate(context.Background(), fake, GenerateOptions{
		Keywords:    []string{"go", " tips "},
		Description: "A site about Go.",
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "Go Tips" {
		t.Errorf("unexpected title: %s", c.Title)
	}
	if !fake.lastJSON {
		t.Error("expected a JSON object response request")
	}
	if len(fake.lastMsgs) != 2 || fake.lastMsgs[0].Role != llm.RoleSystem {
		t.Fatalf("unexpected messages: %+v", fake.lastMsgs)
	}
	if !strings.Contains(fake.lastMsgs[1].Content, "Keywords: go, tips") {
		t.Errorf("prompt should contain trimmed keywords, got:\n%s", fake.lastMsgs[1].Content)
	}
	if !strings.Contains(fake.lastMsgs[1].Content, "Tone: Professional") {
		t.Error("prompt should default the tone to Professional")
	}
}

func TestGenerateWrappedJSON(t *testing.T) {
	fake := &fakeChat{response: "Here is your article:\n" + validResponse + "\nEnjoy!"}

	c, err := Generate(context.Background(), fake, GenerateOptions{Keywords: []string{"go"}})
	if err != nil {
		t.Fatalf("expected lenient parsing to succeed, got: %v", err)
	}
	if c.Title != "Go Tips" {
		t.Errorf("unexpected title: %s", c.Title)
	}
}

func TestGenerateMissingFields(t *testing.T) {
	fake := &fakeChat{response: `{"title": "T", "body": "B", "summary": "", "meta_description": "M"}`}

	_, err := Generate(context.Background(), fake, GenerateOptions{Keywords: []string{"go"}})
	if err == nil {
		t.Fatal("expected error for missing summary")
	}
	if !strings.Contains(err.Error(), "summary") {
		t.Errorf("error should name the missing field, got: %v", err)
	}
}

func TestGenerateRequiresKeywords(t *testing.T) {
	fake := &fakeChat{response: validResponse}

	if _, err := Generate(context.Background(), fake, GenerateOptions{Keywords: []string{" ", ""}}); err == nil {
		t.Fatal("expected error for blank keywords")
	}
}

func TestGenerateClientError(t *testing.T) {
	fake := &fakeChat{err: fmt.Errorf("boom")}

	if _, err := Generate(context.Background(), fake, GenerateOptions{Keywords: []string{"go"}}); err == nil {
		t.Fatal("expected error when the client fails")
	}
}
