package cache

import (
	"context"
	"sync"

	"github.com/tomsquest/wordref/internal/models"
)

// TranslateSession is a retrieval handle bound to one language pair.
type TranslateSession interface {
	Translate(ctx context.Context, text string) (models.TranslationResult, error)
}

// SessionFactory builds a session for a language-pair code.
type SessionFactory func(code string) TranslateSession

// SessionCache memoizes one session per language-pair code for the lifetime
// of the process. Sessions are stateless handles, so the cache is unbounded
// and never evicts on its own; Reset exists for external teardown.
type SessionCache struct {
	mu       sync.Mutex
	factory  SessionFactory
	sessions map[string]TranslateSession
}

func NewSessionCache(factory SessionFactory) *SessionCache {
	return &SessionCache{
		factory:  factory,
		sessions: make(map[string]TranslateSession),
	}
}

// Get returns the memoized session for code, constructing it on first use.
func (c *SessionCache) Get(code string) TranslateSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, exists := c.sessions[code]; exists {
		return s
	}
	s := c.factory(code)
	c.sessions[code] = s
	return s
}

// Len reports how many distinct codes have sessions.
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Reset drops every memoized session.
func (c *SessionCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions = make(map[string]TranslateSession)
}
