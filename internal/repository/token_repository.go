package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/pkg/recordstore"
)

// TokenRepository owns the override token book.
type TokenRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

// NewTokenRepository constructs a TokenRepository.
func NewTokenRepository(store recordstore.Store) *TokenRepository {
	return &TokenRepository{store: store}
}

// Get returns the full token book.
func (r *TokenRepository) Get(ctx context.Context) (models.TokenBook, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// Update runs mutate against the token book inside one locked cycle.
// Token redemption relies on this to stay exactly-once.
func (r *TokenRepository) Update(ctx context.Context, mutate func(*models.TokenBook) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, err := r.load(ctx)
	if err != nil {
		return err
	}
	if err := mutate(&book); err != nil {
		return err
	}
	return r.store.Write(ctx, collectionTokens, book)
}

func (r *TokenRepository) load(ctx context.Context) (models.TokenBook, error) {
	var book models.TokenBook
	if err := r.store.Read(ctx, collectionTokens, &book); err != nil {
		if errors.Is(err, recordstore.ErrNoRecord) {
			return models.TokenBook{}, nil
		}
		return models.TokenBook{}, err
	}
	return book, nil
}
