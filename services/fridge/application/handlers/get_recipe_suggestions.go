package handlers

import (
	"net/http"

	"github.com/ghuser/fridgepal/pkg/errhttp"
	"github.com/ghuser/fridgepal/pkg/httpx"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// GetRecipeSuggestionsHandler handles GET /recipes/suggestions requests.
type GetRecipeSuggestionsHandler struct {
	svc *appsvcs.Services
}

// NewGetRecipeSuggestionsHandler returns a GetRecipeSuggestionsHandler backed by the given services.
func NewGetRecipeSuggestionsHandler(svc *appsvcs.Services) *GetRecipeSuggestionsHandler {
	return &GetRecipeSuggestionsHandler{svc: svc}
}

// Execute suggests recipes from the active items.
//
//	@Summary		Recipe suggestions
//	@Description	Normalized names of active items and every built-in recipe whose ingredients are all available
//	@Tags			recipes
//	@Produce		json
//	@Success		200	{object}	SuggestionsResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/recipes/suggestions [get]
func (h *GetRecipeSuggestionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Inventory.SuggestRecipes(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	recipes := make([]RecipeResponse, len(s.Recipes))
	for i, rec := range s.Recipes {
		recipes[i] = RecipeResponse{
			Name:         rec.Name,
			Ingredients:  rec.Ingredients,
			Instructions: rec.Instructions,
		}
	}
	httpx.JSON(w, http.StatusOK, SuggestionsResponse{
		AvailableIngredients: s.AvailableIngredients,
		Recipes:              recipes,
	})
}
