package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tomsquest/wordref/internal/models"
	"github.com/tomsquest/wordref/internal/storage/cache"
)

// usageExamples are the curated queries shown with the usage help.
var usageExamples = []struct {
	query string
	desc  string
}{
	{"enfr hello", "English to French"},
	{"fren bonjour", "French to English"},
	{"ende computer", "English to German"},
	{"esen gracias", "Spanish to English"},
}

// Options tune the dispatcher's help and suggestion output.
type Options struct {
	// Trigger is the host's query prefix, prepended to input hints.
	Trigger string
	// SuggestionLimit bounds the pair sample in the invalid-pair response.
	SuggestionLimit int
	// Denylist holds pair codes known to be broken upstream. They are kept
	// out of suggestions but stay usable when entered directly.
	Denylist []string
}

// Dispatcher turns one raw query into one response. Queries are independent;
// the only shared state is the registry snapshot and the session cache.
type Dispatcher struct {
	registry *PairRegistry
	sessions *cache.SessionCache
	opts     Options
	log      *zap.Logger
}

func NewDispatcher(registry *PairRegistry, sessions *cache.SessionCache, opts Options, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		sessions: sessions,
		opts:     opts,
		log:      log,
	}
}

// Dispatch routes raw input to one of the five response modes. Every path
// ends in a response record set; nothing here is fatal to the process.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) models.Response {
	outcome := ParseQuery(raw)
	switch outcome.Kind {
	case ParseEmpty, ParseMalformed:
		return d.usageResponse()
	}

	if !d.registry.Supported(outcome.Code) {
		return d.invalidPairResponse(outcome.Code)
	}

	return d.translate(ctx, outcome.Code, outcome.Text)
}

func (d *Dispatcher) translate(ctx context.Context, code, text string) models.Response {
	result, err := d.sessions.Get(code).Translate(ctx, text)
	if err != nil {
		d.log.Error("translation failed",
			zap.String("pair", code),
			zap.String("text", text),
			zap.Error(err),
		)
		return errorResponse(err)
	}

	records, found := Flatten(result, text)
	if !found {
		return models.Response{Mode: models.ModeNoResults, Records: records}
	}
	return models.Response{Mode: models.ModeResults, Records: records}
}

func (d *Dispatcher) usageResponse() models.Response {
	records := []models.DisplayRecord{
		{
			ID:        "translator_usage",
			Headline:  "WordReference Translation",
			Detail:    "Format: [language_pair] [word] (e.g., 'enfr hello')",
			InputHint: d.opts.Trigger + "enfr ",
			Actions: []models.Action{
				{Kind: models.ActionCopy, Label: "Copy format", Payload: "enfr hello"},
			},
		},
	}

	for i, example := range usageExamples {
		records = append(records, models.DisplayRecord{
			ID:        fmt.Sprintf("translator_example_%d", i),
			Headline:  "Example: " + example.query,
			Detail:    example.desc,
			InputHint: d.opts.Trigger + example.query,
			Actions: []models.Action{
				{Kind: models.ActionCopy, Label: "Use this example", Payload: d.opts.Trigger + example.query},
			},
		})
	}

	return models.Response{Mode: models.ModeUsage, Records: records}
}

func (d *Dispatcher) invalidPairResponse(code string) models.Response {
	records := []models.DisplayRecord{
		{
			ID:       "translator_invalid_pair",
			Headline: fmt.Sprintf("Invalid language pair: %s", code),
			Detail:   "Please use one of the supported language pairs",
		},
	}

	for _, pair := range d.registry.Suggestions(d.opts.SuggestionLimit, d.opts.Denylist) {
		hint := d.opts.Trigger + pair.Code + " "
		records = append(records, models.DisplayRecord{
			ID:        "translator_pair_" + pair.Code,
			Headline:  fmt.Sprintf("%s: %s to %s", pair.Code, pair.From, pair.To),
			Detail:    fmt.Sprintf("Language pair for translating from %s to %s", pair.From, pair.To),
			InputHint: hint,
			Actions: []models.Action{
				{Kind: models.ActionCopy, Label: "Use this language pair", Payload: hint},
			},
		})
	}

	return models.Response{Mode: models.ModeInvalidPair, Records: records}
}

func errorResponse(err error) models.Response {
	return models.Response{
		Mode: models.ModeError,
		Records: []models.DisplayRecord{
			{
				ID:       "translator_error",
				Headline: "Translation error",
				Detail:   err.Error(),
				Actions: []models.Action{
					{Kind: models.ActionCopy, Label: "Copy error", Payload: err.Error()},
				},
			},
		},
	}
}
