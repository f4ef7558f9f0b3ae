package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	pkgvalidator "github.com/ghuser/fridgepal/pkg/validator"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces every editable field of an item.
//
//	@Summary		Update item
//	@Description	Full replace of the editable fields, including deleted. Any store failure is reported as 404.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Item ID"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.Update(r.Context(), chi.URLParam(r, "id"), req.toItem())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
