package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"

	genai "google.golang.org/genai"
)

// ErrNoAPIKey is returned when Gemini is selected without credentials.
var ErrNoAPIKey = errors.New("missing GOOGLE_API_KEY")

// transcribePrompt asks for a verbatim transcript that keeps the index
// layout intact, since the parser depends on lines, tabs and commas.
const transcribePrompt = `Transcribe the full text of this document exactly as written.
Rules:
- Output plain text only. No markdown, no code fences, no commentary.
- Keep every line break. Put each paragraph or index entry on its own line.
- In index entries, separate the subject from its references with a single TAB character.
- Keep references exactly as printed, for example "1:23, 2:45a,". Keep trailing commas.
- Section letters of the index stay alone on their own line.`

// Gemini transcribes documents through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if model == "" {
		model = DefaultModel
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &Gemini{client: c, model: model, log: slog.Default().With("component", "gemini")}, nil
}

// Text uploads the document inline and returns the model's transcript.
func (g *Gemini) Text(ctx context.Context, path string) (string, error) {
	if g.client == nil {
		return "", errors.New("gemini not configured")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	content := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: transcribePrompt},
				{InlineData: &genai.Blob{MIMEType: mimeType(path), Data: b}},
			},
		},
	}
	res, err := g.client.Models.GenerateContent(ctx, g.model, content, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API call failed: %w", err)
	}
	text := stripCodeFences(res.Text())
	g.log.Debug("transcribed document", "file", filepath.Base(path), "model", g.model, "bytes", len(text))
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

func mimeType(path string) string {
	switch filepath.Ext(path) {
	case ".pdf", ".PDF":
		return "application/pdf"
	}
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	return "application/pdf"
}
