package handlers

import (
	"fmt"
	"net/http"

	"github.com/mwhitaker/statekit/internal/adapters/http/dto"
	"github.com/mwhitaker/statekit/internal/domain"
	"github.com/mwhitaker/statekit/internal/ports"
)

// ActionHandler handles HTTP requests for inspecting and clearing action
// lifecycle state.
type ActionHandler struct {
	svc ports.StateService
}

// NewActionHandler creates a new ActionHandler with the given service port.
func NewActionHandler(svc ports.StateService) *ActionHandler {
	return &ActionHandler{svc: svc}
}

// GetAction handles GET /api/v1/actions/{actionID}.
func (h *ActionHandler) GetAction(w http.ResponseWriter, r *http.Request) {
	actionID := parseActionID(r)

	state, ok := h.svc.ActionState(actionID)
	if !ok {
		dto.WriteErrorResponse(w, r, fmt.Errorf("action %q: %w", actionID, domain.ErrNotFound))
		return
	}

	writeJSON(w, http.StatusOK, dto.ToActionResponse(actionID, state))
}

// ClearAction handles DELETE /api/v1/actions/{actionID}. Clearing an
// identity that holds no state is a no-op and still returns 204.
func (h *ActionHandler) ClearAction(w http.ResponseWriter, r *http.Request) {
	actionID := parseActionID(r)

	if err := h.svc.ClearAction(r.Context(), actionID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
