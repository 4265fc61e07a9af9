// Package app provides application services that orchestrate use cases by
// coordinating between the action pipeline, the store, and outbound ports.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mwhitaker/statekit/internal/app/action"
	"github.com/mwhitaker/statekit/internal/app/fanout"
	"github.com/mwhitaker/statekit/internal/app/selector"
	"github.com/mwhitaker/statekit/internal/async"
	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/ports"
)

// Compile-time check that CatalogService implements ports.StateService.
var _ ports.StateService = (*CatalogService)(nil)

// CatalogService implements ports.StateService. It binds three action
// definitions against the downstream catalog API and exposes the store's
// derived read models. All fetch outcomes, including failures, land in the
// store as lifecycle events; the HTTP layer reads them back from there.
type CatalogService struct {
	store  ports.Store
	client ports.CatalogClient
	logger *slog.Logger

	listArticles *action.Definition
	getArticle   *action.Definition
	getAuthor    *action.Definition
	definitions  map[string]*action.Definition

	articles *selector.Selector[[]catalog.Article]
}

// NewCatalogService creates a CatalogService wired to the given store and
// catalog client. maxResolveDepth bounds argument builder recursion on the
// bound actions; zero leaves it unbounded.
func NewCatalogService(st ports.Store, client ports.CatalogClient, logger *slog.Logger, maxResolveDepth int) (*CatalogService, error) {
	articlesSchema, err := domain.NewSchema("articles")
	if err != nil {
		return nil, fmt.Errorf("articles schema: %w", err)
	}
	authorsSchema, err := domain.NewSchema("authors")
	if err != nil {
		return nil, fmt.Errorf("authors schema: %w", err)
	}

	s := &CatalogService{
		store:  st,
		client: client,
		logger: logger,
	}

	// The list operation hands back a promise so the fetch itself is free
	// to run on its own goroutine; the pipeline awaits it before emitting
	// the terminal event.
	s.listArticles, err = action.New("load articles", articlesSchema,
		func(ctx context.Context, _ ...any) any {
			return async.Go(func() (any, error) {
				return s.client.ListArticles(ctx)
			})
		},
		action.WithMaxResolveDepth(maxResolveDepth),
	)
	if err != nil {
		return nil, err
	}

	s.getArticle, err = action.New("load article", articlesSchema,
		func(ctx context.Context, args ...any) any {
			id, err := int64Arg(args)
			if err != nil {
				return err
			}
			a, err := s.client.GetArticle(ctx, id)
			if err != nil {
				return err
			}
			return a
		},
		action.WithArgBuilder(action.BuilderFunc(coerceIDArgs)),
		action.WithMaxResolveDepth(maxResolveDepth),
	)
	if err != nil {
		return nil, err
	}

	s.getAuthor, err = action.New("load author", authorsSchema,
		func(ctx context.Context, args ...any) any {
			id, err := int64Arg(args)
			if err != nil {
				return err
			}
			a, err := s.client.GetAuthor(ctx, id)
			if err != nil {
				return err
			}
			return a
		},
		action.WithArgBuilder(action.BuilderFunc(coerceIDArgs)),
		action.WithMaxResolveDepth(maxResolveDepth),
	)
	if err != nil {
		return nil, err
	}

	s.definitions = map[string]*action.Definition{
		s.listArticles.ID(): s.listArticles,
		s.getArticle.ID():   s.getArticle,
		s.getAuthor.ID():    s.getAuthor,
	}

	listID := s.listArticles.ID()
	s.articles = selector.New(func(state lifecycle.State) []catalog.Article {
		resolved, ok := selector.Denormalize(state, listID)
		if !ok {
			return nil
		}
		items, ok := resolved.([]any)
		if !ok {
			return nil
		}
		articles := make([]catalog.Article, 0, len(items))
		for _, item := range items {
			if a, ok := item.(catalog.Article); ok {
				articles = append(articles, a)
			}
		}
		return articles
	})

	return s, nil
}

// RefreshArticles dispatches the article list action.
func (s *CatalogService) RefreshArticles(ctx context.Context) (string, error) {
	s.logger.InfoContext(ctx, "refreshing articles",
		slog.String("action_id", s.listArticles.ID()),
	)
	return s.listArticles.ID(), s.store.Dispatch(ctx, s.listArticles.Invoke())
}

// RefreshArticle dispatches the single-article action for id.
func (s *CatalogService) RefreshArticle(ctx context.Context, id int64) (string, error) {
	d := s.getArticle.WithSuffix(id)
	s.logger.InfoContext(ctx, "refreshing article",
		slog.String("action_id", d.ID()),
		slog.Int64("article_id", id),
	)
	return d.ID(), s.store.Dispatch(ctx, d.Invoke(id))
}

// maxBatchWorkers bounds concurrent dispatches during a batch refresh.
const maxBatchWorkers = 4

// RefreshArticleBatch dispatches per-article refreshes for ids with bounded
// concurrency. One result comes back per id, in input order; a result's Err
// is set only when the dispatch itself failed.
func (s *CatalogService) RefreshArticleBatch(ctx context.Context, ids []int64) []ports.RefreshResult {
	results := fanout.Run(ctx, maxBatchWorkers, ids, func(ctx context.Context, id int64) (string, error) {
		return s.RefreshArticle(ctx, id)
	})

	out := make([]ports.RefreshResult, len(results))
	for i, r := range results {
		out[i] = ports.RefreshResult{
			ArticleID: ids[i],
			ActionID:  r.Value,
			Err:       r.Err,
		}
	}
	return out
}

// RefreshAuthor dispatches the single-author action for id.
func (s *CatalogService) RefreshAuthor(ctx context.Context, id int64) (string, error) {
	d := s.getAuthor.WithSuffix(id)
	s.logger.InfoContext(ctx, "refreshing author",
		slog.String("action_id", d.ID()),
		slog.Int64("author_id", id),
	)
	return d.ID(), s.store.Dispatch(ctx, d.Invoke(id))
}

// Articles returns the denormalized article list from the latest successful
// list refresh.
func (s *CatalogService) Articles() ([]catalog.Article, bool) {
	articles := s.articles.Select(s.store)
	return articles, articles != nil
}

// ActionState returns one action slice from the current state snapshot.
// Suffixed identities (per-article, per-author) are looked up the same way
// as the root identities.
func (s *CatalogService) ActionState(actionID string) (lifecycle.ActionState, bool) {
	return s.store.GetState().Action(actionID)
}

// ClearAction resets the slice for actionID. The clear event is emitted with
// the identity as given so suffixed slices can be cleared individually;
// clearing an identity that holds no state is a no-op in the store.
func (s *CatalogService) ClearAction(ctx context.Context, actionID string) error {
	d, ok := s.definitions[actionID]
	if ok {
		return s.store.Dispatch(ctx, d.Clear())
	}

	// Suffixed or foreign identity: emit a bare clear event against it.
	return s.store.Dispatch(ctx, ports.Thunk(func(ctx context.Context, dispatch ports.Dispatch, getState ports.GetState) error {
		state, found := getState().Action(actionID)
		if !found {
			return nil
		}
		return dispatch(ctx, lifecycle.Clear(actionID, state.Latest.EntityName, time.Now()))
	}))
}

// int64Arg extracts the single int64 identifier argument produced by
// coerceIDArgs.
func int64Arg(args []any) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing identifier argument: %w", domain.ErrValidation)
	}
	id, ok := args[0].(int64)
	if !ok {
		return 0, fmt.Errorf("identifier must be an integer, got %T: %w", args[0], domain.ErrValidation)
	}
	return id, nil
}

// coerceIDArgs is the shared argument builder for identifier-taking actions:
// it normalizes the caller's identifier to int64 so operations see one shape.
func coerceIDArgs(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	switch v := args[0].(type) {
	case int64:
		return []any{v}
	case int:
		return []any{int64(v)}
	case int32:
		return []any{int64(v)}
	default:
		return args
	}
}
