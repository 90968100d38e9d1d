package ai

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// Factory builds a backend. It fails when the credential is missing.
type Factory func(ctx context.Context) (Backend, error)

// Lazy builds the backend on first use and keeps it. Concurrent first calls
// share one construction; a failed construction is retried next time.
type Lazy struct {
	build Factory
	group singleflight.Group

	mu      sync.Mutex
	backend Backend
}

// NewLazy wraps build.
func NewLazy(build Factory) *Lazy {
	return &Lazy{build: build}
}

// Get returns the backend, building it if needed. The build is detached from
// the caller's cancellation; a caller whose ctx ends while waiting gets
// ctx.Err() unchanged.
func (l *Lazy) Get(ctx context.Context) (Backend, error) {
	if b := l.current(); b != nil {
		return b, nil
	}

	buildCtx := context.WithoutCancel(ctx)
	ch := l.group.DoChan("backend", func() (any, error) {
		if b := l.current(); b != nil {
			return b, nil
		}
		b, err := l.build(buildCtx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.backend = b
		l.mu.Unlock()
		return b, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, &domain.ProviderError{
				Op:      "ai.Lazy",
				Kind:    domain.ErrCredential,
				Message: domain.MsgCredential,
				Err:     fmt.Errorf("build backend: %w", res.Err),
			}
		}
		return res.Val.(Backend), nil
	}
}

// Built reports whether the backend exists.
func (l *Lazy) Built() bool {
	return l.current() != nil
}

func (l *Lazy) current() Backend {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.backend
}
