package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/tomsquest/wordref/internal/storage/cache"
)

type Service struct {
	*Dispatcher
}

// InitServices snapshots the language-pair registry and wires the dispatcher.
func InitServices(ctx context.Context, api DictionaryAPII, sessions *cache.SessionCache, opts Options, log *zap.Logger) (*Service, error) {
	registry, err := LoadRegistry(ctx, api)
	if err != nil {
		return nil, err
	}

	log.Info("language pair registry loaded", zap.Int("pairs", registry.Len()))

	return &Service{
		Dispatcher: NewDispatcher(registry, sessions, opts, log),
	}, nil
}
