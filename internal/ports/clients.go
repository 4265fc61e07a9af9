package ports

import (
	"context"

	"github.com/mwhitaker/statekit/internal/domain/catalog"
)

// CatalogClient defines the client port for the downstream catalog API.
// Implemented by the ACL adapter; called by the application layer's action
// operations. Methods map 1:1 to downstream endpoints using domain terminology.
type CatalogClient interface {
	// ListArticles returns all articles.
	ListArticles(ctx context.Context) ([]catalog.Article, error)

	// GetArticle returns a single article by ID.
	// Returns domain.ErrNotFound if the article does not exist.
	GetArticle(ctx context.Context, id int64) (*catalog.Article, error)

	// GetAuthor returns a single author by ID.
	// Returns domain.ErrNotFound if the author does not exist.
	GetAuthor(ctx context.Context, id int64) (*catalog.Author, error)
}
