package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mwhitaker/statekit/internal/adapters/clients/catalog/post"
	"github.com/mwhitaker/statekit/internal/adapters/clients/catalog/writer"
	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/platform/httpclient"
	"github.com/mwhitaker/statekit/internal/ports"
)

// Compile-time interface check.
var _ ports.CatalogClient = (*Client)(nil)

// Client is the outbound adapter for the downstream catalog API. It
// implements [ports.CatalogClient].
//
// All methods translate between our domain types and the downstream API's
// post/writer representations via the ACL translators in sub-packages [post]
// and [writer]. HTTP errors are mapped to domain errors (ErrNotFound,
// ErrValidation, etc.) by [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, retry with
// exponential backoff, OpenTelemetry tracing, and health checking
// ([ports.HealthChecker]) for every outbound call.
type Client struct {
	req    *Requester
	logger *slog.Logger
}

// NewClient creates a Client that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the downstream
// catalog API root (e.g. "https://catalog-api.example.com"). The logger is
// used for error-level diagnostics on failed or unexpected responses.
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	return &Client{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListArticles fetches all articles from GET /api/v1/posts. Downstream
// "posts" are translated to our domain "article" concept.
func (c *Client) ListArticles(ctx context.Context) ([]catalog.Article, error) {
	var dto post.PostListResponseDTO
	if err := c.req.Get(ctx, "/api/v1/posts", &dto); err != nil {
		return nil, err
	}
	return post.ToDomainArticleList(dto), nil
}

// GetArticle fetches a single article by ID from GET /api/v1/posts/{id}.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *Client) GetArticle(ctx context.Context, id int64) (*catalog.Article, error) {
	path := fmt.Sprintf("/api/v1/posts/%d", id)

	var dto post.PostDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	result := post.ToDomainArticle(&dto)
	return &result, nil
}

// GetAuthor fetches a single author by ID from GET /api/v1/writers/{id}.
// Returns [domain.ErrNotFound] if the downstream API returns 404.
func (c *Client) GetAuthor(ctx context.Context, id int64) (*catalog.Author, error) {
	path := fmt.Sprintf("/api/v1/writers/%d", id)

	var dto writer.WriterDTO
	if err := c.req.Get(ctx, path, &dto); err != nil {
		return nil, err
	}
	result := writer.ToDomainAuthor(&dto)
	return &result, nil
}
