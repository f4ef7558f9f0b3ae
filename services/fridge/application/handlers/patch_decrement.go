package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	pkgvalidator "github.com/ghuser/fridgepal/pkg/validator"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// PatchDecrementHandler handles PATCH /items/{id}/decrement requests.
type PatchDecrementHandler struct {
	svc *appsvcs.Services
}

// NewPatchDecrementHandler returns a PatchDecrementHandler backed by the given services.
func NewPatchDecrementHandler(svc *appsvcs.Services) *PatchDecrementHandler {
	return &PatchDecrementHandler{svc: svc}
}

// Execute subtracts amount from the item's quantity.
//
//	@Summary		Decrement quantity
//	@Description	Subtracts amount from quantity. A result at or below zero also moves the item to the trash.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		DecrementRequest	true	"Amount to subtract"
//	@Success		200		{object}	ItemMessageResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items/{id}/decrement [patch]
func (h *PatchDecrementHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[DecrementRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.Decrement(r.Context(), chi.URLParam(r, "id"), *req.Amount)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.Message(w, http.StatusOK, "Quantity updated", "item", toItemResponse(item))
}
