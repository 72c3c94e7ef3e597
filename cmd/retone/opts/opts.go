package opts

import (
	"context"
	"io"

	"github.com/walteh/retone/pkg/config"
	"github.com/walteh/retone/pkg/gemini"
	"github.com/walteh/retone/pkg/record"
	"github.com/walteh/retone/pkg/rewrite"
	"github.com/walteh/retone/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// TransformerFactory builds the transformer used by the rewrite command
type TransformerFactory func(ctx context.Context, cfg *config.Config) (rewrite.Transformer, error)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	ConfigFile     string
	Debug          bool
	Console        io.Writer
	NewTransformer TransformerFactory
}

// LoadConfig loads and validates the config file named by --config
func (o *RootOpts) LoadConfig(ctx context.Context) (*config.Config, error) {
	cfg, err := config.Load(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Extractor compiles the record syntax of cfg
func Extractor(cfg *config.Config) (*record.Extractor, error) {
	syntax := record.DefaultSyntax()
	if cfg.Syntax != nil {
		syntax = *cfg.Syntax
	}
	ext, err := record.NewExtractor(syntax)
	if err != nil {
		return nil, errors.Errorf("creating extractor: %w", err)
	}
	return ext, nil
}

// Replacer returns the reinjector selected by cfg.Match
func Replacer(cfg *config.Config, ext *record.Extractor) text.TextReplacer {
	escaper := text.NewTemplateLiteralEscaper()
	if cfg.Match == config.MatchBody {
		return text.NewBodyReplacer(ext, escaper)
	}
	return text.NewKeyedReplacer(ext, escaper)
}

// 🤖 GeminiTransformer builds a Gemini transformer from cfg.
// A missing API key is an error, so nothing is processed without credentials.
func GeminiTransformer(ctx context.Context, cfg *config.Config) (rewrite.Transformer, error) {
	args := cfg.Transform
	if args == nil {
		return nil, errors.Errorf("transform settings are missing")
	}

	key, err := gemini.APIKeyFromEnv(args.APIKeyEnv)
	if err != nil {
		return nil, errors.Errorf("reading API key: %w", err)
	}

	guidelines, err := args.LoadGuidelines()
	if err != nil {
		return nil, err
	}

	temperature := config.DefaultTemperature
	if args.Temperature != nil {
		temperature = *args.Temperature
	}

	t, err := gemini.New(ctx, gemini.Options{
		APIKey:          key,
		Model:           args.Model,
		Guidelines:      guidelines,
		Temperature:     float32(temperature),
		MaxOutputTokens: int32(args.MaxOutputTokens),
	})
	if err != nil {
		return nil, errors.Errorf("creating gemini transformer: %w", err)
	}
	return t, nil
}
