// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/mwhitaker/statekit/internal/adapters/http/dto"
	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/ports"
)

// ArticleHandler handles HTTP requests for article reads and catalog
// refresh dispatches.
type ArticleHandler struct {
	svc ports.StateService
}

// NewArticleHandler creates a new ArticleHandler with the given service port.
func NewArticleHandler(svc ports.StateService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// ListArticles handles GET /api/v1/articles. It serves the denormalized
// article list from the entity cache; 404 until a list refresh has succeeded.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, ok := h.svc.Articles()
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("article list not loaded: %w", domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, dto.ToArticleListResponse(articles))
}

// RefreshArticles handles POST /api/v1/refresh/articles. With no body (or
// empty ids) it dispatches a full list refresh; with ids it dispatches a
// batch of per-article refreshes. Either way the response is 202: the fetch
// outcome lands in the store, readable via the actions endpoint.
func (h *ArticleHandler) RefreshArticles(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshArticlesRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if len(req.IDs) == 0 {
		actionID, err := h.svc.RefreshArticles(r.Context())
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		writeJSON(w, http.StatusAccepted, dto.RefreshResponse{ActionID: actionID})
		return
	}

	results := h.svc.RefreshArticleBatch(r.Context(), req.IDs)
	writeJSON(w, http.StatusAccepted, dto.ToBatchRefreshResponse(results))
}

// RefreshArticle handles POST /api/v1/refresh/articles/{id}.
func (h *ArticleHandler) RefreshArticle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	actionID, err := h.svc.RefreshArticle(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, dto.RefreshResponse{ActionID: actionID})
}

// RefreshAuthor handles POST /api/v1/refresh/authors/{id}.
func (h *ArticleHandler) RefreshAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	actionID, err := h.svc.RefreshAuthor(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, dto.RefreshResponse{ActionID: actionID})
}
