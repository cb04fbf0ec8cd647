// Package gemini wraps the two Gemini calls the menu needs: a short text
// description and an inline-image photo per item.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/saffronlabs/menuboard/internal/config"
	"google.golang.org/api/option"
)

// ErrNoImage is returned when a well-formed response contains no inline
// image part. Callers treat it like any other generation failure; it only
// exists so logs can tell the cases apart.
var ErrNoImage = errors.New("response contained no inline image data")

// Client is the generation client for menu descriptions and photos.
type Client struct {
	client      *genai.Client
	textModel   string
	imageModel  string
	temperature float32
}

// New returns a new generation client, or an error when the credential is
// missing or the underlying client cannot be constructed.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}

	return &Client{
		client:      client,
		textModel:   cfg.TextModel,
		imageModel:  cfg.ImageModel,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

func describePrompt(name string) string {
	return fmt.Sprintf("Write an elegant, appetizing description of %q for a restaurant menu. Use at most 25 words and respond with the description text only.", name)
}

func illustratePrompt(name string) string {
	return fmt.Sprintf("A professional food photograph of %s, appetizingly plated and centered on a minimalist background.", name)
}

// Describe generates a short menu description for the given item name.
func (c *Client) Describe(ctx context.Context, name string) (string, error) {
	model := c.client.GenerativeModel(c.textModel)
	model.SetTemperature(c.temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(describePrompt(name)))
	if err != nil {
		return "", fmt.Errorf("failed to generate description: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("empty content returned from Gemini")
	}

	txt, ok := candidate.Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	text := strings.TrimSpace(string(txt))
	if text == "" {
		return "", fmt.Errorf("blank description returned from Gemini")
	}
	return text, nil
}

// Illustrate generates a photo for the given item name and returns the raw
// image bytes with their MIME type. The first inline-image part of the
// response wins; any later parts or trailing text are ignored.
func (c *Client) Illustrate(ctx context.Context, name string) ([]byte, string, error) {
	model := c.client.GenerativeModel(c.imageModel)

	resp, err := model.GenerateContent(ctx, genai.Text(illustratePrompt(name)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate image: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, "", fmt.Errorf("no candidates returned from Gemini")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, "", fmt.Errorf("empty content returned from Gemini")
	}

	blob, ok := firstInlineImage(candidate.Content.Parts)
	if !ok {
		return nil, "", ErrNoImage
	}
	return blob.Data, blob.MIMEType, nil
}

func firstInlineImage(parts []genai.Part) (genai.Blob, bool) {
	for _, part := range parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob, true
		}
	}
	return genai.Blob{}, false
}
