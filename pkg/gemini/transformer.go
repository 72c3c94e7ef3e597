package gemini

import (
	"context"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers with no text
var ErrEmptyResponse = errors.Base("empty response from model")

// Options configures a Transformer
type Options struct {
	APIKey          string
	Model           string
	Guidelines      string
	Temperature     float32
	MaxOutputTokens int32

	// BaseURL and HTTPClient override the endpoint, mostly for tests
	BaseURL    string
	HTTPClient *http.Client
}

// Transformer rewrites article bodies with the Gemini API
type Transformer struct {
	client      *genai.Client
	model       string
	guidelines  string
	temperature float32
	maxTokens   int32
}

// New creates a Transformer
func New(ctx context.Context, opts Options) (*Transformer, error) {
	if opts.APIKey == "" {
		return nil, errors.Errorf("gemini API key is required")
	}
	if opts.Model == "" {
		return nil, errors.Errorf("model is required")
	}
	if opts.MaxOutputTokens <= 0 {
		return nil, errors.Errorf("max output tokens must be positive, got %d", opts.MaxOutputTokens)
	}

	guidelines := opts.Guidelines
	if strings.TrimSpace(guidelines) == "" {
		guidelines = DefaultGuidelines
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, errors.Errorf("creating genai client: %w", err)
	}

	return &Transformer{
		client:      client,
		model:       opts.Model,
		guidelines:  guidelines,
		temperature: opts.Temperature,
		maxTokens:   opts.MaxOutputTokens,
	}, nil
}

// Transform returns a rewritten body for the article
func (t *Transformer) Transform(ctx context.Context, title, body string) (string, error) {
	logger := zerolog.Ctx(ctx)

	prompt := BuildPrompt(t.guidelines, title, body)
	logger.Debug().
		Str("model", t.model).
		Str("title", title).
		Int("prompt_bytes", len(prompt)).
		Msg("generating rewrite")

	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(t.temperature),
		MaxOutputTokens: t.maxTokens,
	})
	if err != nil {
		return "", errors.Errorf("generating content for %q: %w", title, err)
	}

	text := trimReply(resp.Text())
	if text == "" {
		return "", errors.WithDetails(ErrEmptyResponse, "title", title)
	}

	logger.Debug().Str("title", title).Int("reply_bytes", len(text)).Msg("rewrite received")
	return text, nil
}

// Name returns the transformer name
func (t *Transformer) Name() string {
	return "gemini:" + t.model
}

// 🔑 APIKeyFromEnv reads the API key from the named environment variable
func APIKeyFromEnv(name string) (string, error) {
	key := strings.TrimSpace(os.Getenv(name))
	if key == "" {
		return "", errors.Errorf("environment variable %s is not set", name)
	}
	return key, nil
}
