package handlers

import (
	"net/http"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists active items with their expiry status.
//
//	@Summary		List items
//	@Description	Lists items not in the trash, in store order, each with a derived expiry status
//	@Tags			items
//	@Produce		json
//	@Param			category	query		string	false	"Exact category match"
//	@Param			search		query		string	false	"Case-insensitive substring of the name"
//	@Success		200			{array}		ItemResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.Inventory.ListActive(r.Context(), q.Get("category"), q.Get("search"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
