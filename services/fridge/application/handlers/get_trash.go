package handlers

import (
	"net/http"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// GetTrashHandler handles GET /trash requests.
type GetTrashHandler struct {
	svc *appsvcs.Services
}

// NewGetTrashHandler returns a GetTrashHandler backed by the given services.
func NewGetTrashHandler(svc *appsvcs.Services) *GetTrashHandler {
	return &GetTrashHandler{svc: svc}
}

// Execute lists trashed items.
//
//	@Summary		List trash
//	@Description	Lists soft-deleted items; status is always null
//	@Tags			trash
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/trash [get]
func (h *GetTrashHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Inventory.ListTrash(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponses(items))
}
