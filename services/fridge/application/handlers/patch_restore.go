package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// PatchRestoreHandler handles PATCH /items/{id}/restore requests.
type PatchRestoreHandler struct {
	svc *appsvcs.Services
}

// NewPatchRestoreHandler returns a PatchRestoreHandler backed by the given services.
func NewPatchRestoreHandler(svc *appsvcs.Services) *PatchRestoreHandler {
	return &PatchRestoreHandler{svc: svc}
}

// Execute takes an item out of the trash.
//
//	@Summary		Restore item
//	@Description	Sets deleted=false; the item moves from /trash back to /items
//	@Tags			trash
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemMessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id}/restore [patch]
func (h *PatchRestoreHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Inventory.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Item restored", "item", toItemResponse(item))
}
