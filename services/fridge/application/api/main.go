package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/fridgepal/services/fridge/application/handlers"
	appsvcs "github.com/ghuser/fridgepal/services/fridge/application/services"
)

// FridgeRoutes registers the inventory, trash, alert and recipe endpoints on
// the provided chi router. Paths are mounted at the root.
func FridgeRoutes(r chi.Router, svcs *appsvcs.Services) {
	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
			r.Patch("/{id}/decrement", handlers.NewPatchDecrementHandler(svcs).Execute)
			r.Patch("/{id}/restore", handlers.NewPatchRestoreHandler(svcs).Execute)
		})
		r.Get("/trash", handlers.NewGetTrashHandler(svcs).Execute)
		r.Delete("/permanent-delete/{id}", handlers.NewDeletePermanentHandler(svcs).Execute)
		r.Get("/alerts/low-stock", handlers.NewGetLowStockHandler(svcs).Execute)
		r.Get("/recipes/suggestions", handlers.NewGetRecipeSuggestionsHandler(svcs).Execute)
	})
}
