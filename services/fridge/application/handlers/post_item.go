package handlers

import (
	"net/http"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	pkgvalidator "github.com/ghuser/fridgepal/pkg/validator"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Add item
//	@Description	Creates an item; the store assigns its $id
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Inventory.Add(r.Context(), req.toItem())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
