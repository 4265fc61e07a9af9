// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/mwhitaker/statekit/internal/domain/catalog"
	"github.com/mwhitaker/statekit/internal/domain/lifecycle"
	"github.com/mwhitaker/statekit/internal/ports"
)

// ActionResponse represents one action slice in HTTP responses. It carries
// the latest lifecycle event plus the payload retained from the previous
// successful fetch, if any.
type ActionResponse struct {
	ActionID       string `json:"action_id"`
	ParentActionID string `json:"parent_action_id,omitempty"`
	Status         string `json:"status"`
	IsFetching     bool   `json:"is_fetching"`
	HasError       bool   `json:"has_error"`
	ErrorText      string `json:"error_text,omitempty"`
	EntityName     string `json:"entity_name"`
	IsArrayData    bool   `json:"is_array_data"`
	Payload        any    `json:"payload,omitempty"`
	PrevPayload    any    `json:"prev_payload,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// ToActionResponse converts an action slice to an HTTP response DTO.
func ToActionResponse(actionID string, as lifecycle.ActionState) ActionResponse {
	ev := as.Latest
	return ActionResponse{
		ActionID:       actionID,
		ParentActionID: ev.ParentActionID,
		Status:         string(ev.Status),
		IsFetching:     ev.IsFetching,
		HasError:       ev.HasError,
		ErrorText:      ev.ErrorText,
		EntityName:     ev.EntityName,
		IsArrayData:    ev.IsArrayData,
		Payload:        ev.Payload,
		PrevPayload:    as.PrevPayload,
		Timestamp:      ev.Time.Format(time.RFC3339Nano),
	}
}

// RefreshResponse acknowledges a dispatched refresh with the action identity
// the caller can poll.
type RefreshResponse struct {
	ActionID string `json:"action_id"`
}

// BatchRefreshItem represents a single article within a batch refresh.
// Message is set only when the dispatch for that article failed.
type BatchRefreshItem struct {
	ArticleID int64  `json:"article_id"`
	ActionID  string `json:"action_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

// BatchRefreshResponse represents the result of a batch article refresh.
type BatchRefreshResponse struct {
	Items     []BatchRefreshItem `json:"items"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// ToBatchRefreshResponse converts per-article refresh results to an HTTP
// response DTO.
func ToBatchRefreshResponse(results []ports.RefreshResult) BatchRefreshResponse {
	items := make([]BatchRefreshItem, len(results))
	succeeded := 0
	for i, r := range results {
		items[i] = BatchRefreshItem{
			ArticleID: r.ArticleID,
			ActionID:  r.ActionID,
		}
		if r.Err != nil {
			items[i].Message = r.Err.Error()
			continue
		}
		succeeded++
	}
	return BatchRefreshResponse{
		Items:     items,
		Total:     len(results),
		Succeeded: succeeded,
		Failed:    len(results) - succeeded,
	}
}

// ArticleResponse represents a single article in HTTP responses.
type ArticleResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AuthorID  int64  `json:"author_id"`
	UpdatedAt string `json:"updated_at"`
}

// ArticleListResponse represents a list of articles in HTTP responses.
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Count    int               `json:"count"`
}

// ToArticleResponse converts a domain Article entity to an HTTP response DTO.
func ToArticleResponse(a *catalog.Article) ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		AuthorID:  a.AuthorID,
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// ToArticleListResponse converts a slice of domain Article entities to an
// HTTP list response DTO.
func ToArticleListResponse(articles []catalog.Article) ArticleListResponse {
	items := make([]ArticleResponse, len(articles))
	for i := range articles {
		items[i] = ToArticleResponse(&articles[i])
	}
	return ArticleListResponse{
		Articles: items,
		Count:    len(items),
	}
}
