package ports

import (
	"context"

	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
)

// RefreshResult reports the outcome of one item within a batch refresh.
// ActionID is set when the invocation was dispatched; Err is set when the
// invocation could not be dispatched at all.
type RefreshResult struct {
	ArticleID int64
	ActionID  string
	Err       error
}

// StateService is the inbound port for the action/state surface. Implemented
// by the application layer; called by HTTP handlers.
//
// Refresh methods dispatch an action invocation into the store and return the
// invoked action's identity so callers can poll its lifecycle. The returned
// error is non-nil only for failures the caller must handle directly (mapper
// failures); operation failures surface as error events on the action slice.
type StateService interface {
	// RefreshArticles re-fetches the article list from the catalog API.
	RefreshArticles(ctx context.Context) (string, error)

	// RefreshArticle re-fetches a single article.
	RefreshArticle(ctx context.Context, id int64) (string, error)

	// RefreshArticleBatch re-fetches several articles concurrently. One
	// result is returned per requested id, in input order.
	RefreshArticleBatch(ctx context.Context, ids []int64) []RefreshResult

	// RefreshAuthor re-fetches a single author.
	RefreshAuthor(ctx context.Context, id int64) (string, error)

	// Articles returns the denormalized article list from the latest
	// successful list refresh. The second return is false when no list has
	// been loaded yet.
	Articles() ([]catalog.Article, bool)

	// ActionState returns the state of one action slice and whether any
	// event has been dispatched for it.
	ActionState(actionID string) (lifecycle.ActionState, bool)

	// ClearAction resets an action's slice. Unknown identities are a no-op.
	ClearAction(ctx context.Context, actionID string) error
}
