package handlers

import (
	"net/http"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// GetLowStockHandler handles GET /alerts/low-stock requests.
type GetLowStockHandler struct {
	svc *appsvcs.Services
}

// NewGetLowStockHandler returns a GetLowStockHandler backed by the given services.
func NewGetLowStockHandler(svc *appsvcs.Services) *GetLowStockHandler {
	return &GetLowStockHandler{svc: svc}
}

// Execute lists active items at or below their threshold.
//
//	@Summary		Low-stock alerts
//	@Description	Active items with a threshold set and quantity <= threshold
//	@Tags			alerts
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/alerts/low-stock [get]
func (h *GetLowStockHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.LowStock(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
