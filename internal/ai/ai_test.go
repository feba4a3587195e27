package ai

import (
	"context"
	"errors"
	"testing"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{"", ProviderOff, false},
		{"off", ProviderOff, false},
		{" Gemini ", ProviderGemini, false},
		{"openai", "", true},
	}
	for _, tt := range tests {
		got, err := ParseProvider(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseProvider(%q) = (%q, %v), want (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"```\nA\nApples\t1:2\n```", "A\nApples\t1:2"},
		{"```text\nIndex\n```\n", "Index"},
		{"  keep\ttabs  ", "keep\ttabs"},
	}
	for _, tt := range tests {
		if got := stripCodeFences(tt.in); got != tt.want {
			t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), "", "")
	if !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestMimeType(t *testing.T) {
	if got := mimeType("scan.PDF"); got != "application/pdf" {
		t.Errorf("mimeType(scan.PDF) = %q", got)
	}
}
