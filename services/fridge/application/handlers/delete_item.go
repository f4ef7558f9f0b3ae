package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute moves an item to the trash.
//
//	@Summary		Soft delete item
//	@Description	Sets deleted=true; the item moves from /items to /trash
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Inventory.SoftDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Item moved to trash")
}
