package dto

import (
	"fmt"

	"github.com/mwhitaker/statekit/internal/domain"
)

// maxBatchIDs caps how many article ids one batch refresh may request.
const maxBatchIDs = 50

// RefreshArticlesRequest represents the optional JSON body for the article
// refresh endpoint. An empty body (or empty ids) requests a full list
// refresh; a non-empty ids list requests a batch of per-article refreshes.
type RefreshArticlesRequest struct {
	IDs []int64 `json:"ids,omitempty"`
}

// Validate checks that any provided ids are usable.
// Returns a *domain.ValidationError if any checks fail.
func (r *RefreshArticlesRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.IDs) > maxBatchIDs {
		fields["ids"] = fmt.Sprintf("at most %d ids per request, got %d", maxBatchIDs, len(r.IDs))
	}
	seen := make(map[int64]struct{}, len(r.IDs))
	for i, id := range r.IDs {
		if id <= 0 {
			fields[fmt.Sprintf("ids[%d]", i)] = fmt.Sprintf("must be a positive integer, got %d", id)
			continue
		}
		if _, dup := seen[id]; dup {
			fields[fmt.Sprintf("ids[%d]", i)] = fmt.Sprintf("duplicate id %d", id)
			continue
		}
		seen[id] = struct{}{}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
