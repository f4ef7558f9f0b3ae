package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// DeletePermanentHandler handles DELETE /permanent-delete/{id} requests.
type DeletePermanentHandler struct {
	svc *appsvcs.Services
}

// NewDeletePermanentHandler returns a DeletePermanentHandler backed by the given services.
func NewDeletePermanentHandler(svc *appsvcs.Services) *DeletePermanentHandler {
	return &DeletePermanentHandler{svc: svc}
}

// Execute removes an item for good.
//
//	@Summary		Permanently delete item
//	@Description	Removes the item from the store. Irreversible.
//	@Tags			trash
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	MessageResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/permanent-delete/{id} [delete]
func (h *DeletePermanentHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Inventory.PermanentDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.Message(w, http.StatusOK, "Item permanently deleted")
}
