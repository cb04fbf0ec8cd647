package gemini

import (
	"context"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/saffronlabs/menuboard/internal/config"
)

func TestDescribePrompt(t *testing.T) {
	prompt := describePrompt("Masala Dosa")

	if !strings.Contains(prompt, "Masala Dosa") {
		t.Errorf("Expected prompt to contain the item name, got %q", prompt)
	}
	if !strings.Contains(prompt, "25 words") {
		t.Errorf("Expected prompt to carry the word budget, got %q", prompt)
	}
}

func TestIllustratePrompt(t *testing.T) {
	prompt := illustratePrompt("Masala Dosa")

	if !strings.Contains(prompt, "Masala Dosa") {
		t.Errorf("Expected prompt to contain the item name, got %q", prompt)
	}
	if !strings.Contains(prompt, "minimalist background") {
		t.Errorf("Expected prompt to request a minimalist background, got %q", prompt)
	}
}

func TestFirstInlineImage(t *testing.T) {
	first := genai.Blob{MIMEType: "image/png", Data: []byte{1}}
	second := genai.Blob{MIMEType: "image/jpeg", Data: []byte{2}}

	tests := []struct {
		name  string
		parts []genai.Part
		want  genai.Blob
		found bool
	}{
		{
			name:  "takes first blob, ignores the rest",
			parts: []genai.Part{genai.Text("here is your image"), first, second, genai.Text("enjoy")},
			want:  first,
			found: true,
		},
		{
			name:  "blob only",
			parts: []genai.Part{first},
			want:  first,
			found: true,
		},
		{
			name:  "text only",
			parts: []genai.Part{genai.Text("no image today")},
			found: false,
		},
		{
			name:  "empty parts",
			parts: nil,
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, ok := firstInlineImage(tt.parts)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if !ok {
				return
			}
			if blob.MIMEType != tt.want.MIMEType {
				t.Errorf("Expected MIME type %s, got %s", tt.want.MIMEType, blob.MIMEType)
			}
			if len(blob.Data) != len(tt.want.Data) || blob.Data[0] != tt.want.Data[0] {
				t.Errorf("Expected data of the first blob, got %v", blob.Data)
			}
		})
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(context.Background(), &config.Config{})
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "GEMINI_API_KEY") {
		t.Errorf("Expected error to name the missing variable, got %v", err)
	}
}
