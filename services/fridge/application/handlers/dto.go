package handlers

import (
	"slices"

	"github.com/go-playground/validator/v10"

	pkgvalidator "github.com/ghuser/fridgepal/pkg/validator"
	"github.com/ghuser/fridgepal/services/fridge/domain/models"
)

func init() {
	pkgvalidator.RegisterValidation("expiry_date", func(fl validator.FieldLevel) bool {
		_, err := models.ParseExpiryDate(fl.Field().String())
		return err == nil
	})
}

// ItemRequest is the body of POST /items and PUT /items/{id}. Any $id or
// status sent by the client is ignored.
type ItemRequest struct {
	Name       string   `json:"name"        validate:"required,max=255"          example:"Milk"`
	Quantity   *float64 `json:"quantity"    validate:"required,gte=0"            example:"2"`
	Unit       string   `json:"unit"        validate:"required,max=64"           example:"L"`
	Category   string   `json:"category"    validate:"required,max=64"           example:"Dairy"`
	Tags       []string `json:"tags"        validate:"omitempty,dive,max=64"     example:"organic"`
	ExpiryDate string   `json:"expiry_date" validate:"required,expiry_date"      example:"2025-06-30"`
	Threshold  *float64 `json:"threshold"   validate:"required,gte=0"            example:"1"`
	Deleted    bool     `json:"deleted"                                          example:"false"`
} // @name ItemRequest

// toItem converts a validated request into a domain item.
func (r *ItemRequest) toItem() *models.Item {
	expiry, _ := models.ParseExpiryDate(r.ExpiryDate) // checked by the expiry_date tag
	tags := slices.Clone(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	threshold := *r.Threshold
	return &models.Item{
		Name:       r.Name,
		Quantity:   *r.Quantity,
		Unit:       r.Unit,
		Category:   r.Category,
		Tags:       tags,
		ExpiryDate: expiry,
		Threshold:  &threshold,
		Deleted:    r.Deleted,
	}
}

// DecrementRequest is the body of PATCH /items/{id}/decrement. A negative
// amount increases the quantity.
type DecrementRequest struct {
	Amount *float64 `json:"amount" validate:"required" example:"1"`
} // @name DecrementRequest

// ItemResponse is the wire form of an item. Status is null outside GET /items.
type ItemResponse struct {
	ID         string   `json:"$id"         example:"665f1c2e0012ab34cd56"`
	Name       string   `json:"name"        example:"Milk"`
	Quantity   float64  `json:"quantity"    example:"2"`
	Unit       string   `json:"unit"        example:"L"`
	Category   string   `json:"category"    example:"Dairy"`
	Tags       []string `json:"tags"`
	ExpiryDate string   `json:"expiry_date" example:"2025-06-30T00:00:00Z"`
	Threshold  *float64 `json:"threshold"   example:"1"`
	Deleted    bool     `json:"deleted"     example:"false"`
	Status     *string  `json:"status"      example:"fresh" enums:"fresh,expiring,expired"`
} // @name ItemResponse

// ItemMessageResponse is returned by mutations that echo the item.
type ItemMessageResponse struct {
	Message string       `json:"message" example:"Item restored"`
	Item    ItemResponse `json:"item"`
} // @name ItemMessageResponse

// MessageResponse is returned by mutations without a body.
type MessageResponse struct {
	Message string `json:"message" example:"Item moved to trash"`
} // @name MessageResponse

// RecipeResponse is one suggested recipe.
type RecipeResponse struct {
	Name         string   `json:"name"         example:"Omelette"`
	Ingredients  []string `json:"ingredients"  example:"egg,milk"`
	Instructions string   `json:"instructions" example:"Beat eggs with milk and cook in a pan."`
} // @name RecipeResponse

// SuggestionsResponse is returned by GET /recipes/suggestions.
type SuggestionsResponse struct {
	AvailableIngredients []string         `json:"available_ingredients" example:"egg,milk"`
	Recipes              []RecipeResponse `json:"recipes"`
} // @name SuggestionsResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

// ValidationErrorResponse is returned when the request body fails validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

func toItemResponse(it *models.Item) ItemResponse {
	tags := it.Tags
	if tags == nil {
		tags = []string{}
	}
	resp := ItemResponse{
		ID:         it.ID,
		Name:       it.Name,
		Quantity:   it.Quantity,
		Unit:       it.Unit,
		Category:   it.Category,
		Tags:       tags,
		ExpiryDate: models.FormatExpiryDate(it.ExpiryDate),
		Threshold:  it.Threshold,
		Deleted:    it.Deleted,
	}
	if it.Status != nil {
		s := string(*it.Status)
		resp.Status = &s
	}
	return resp
}

func toItemResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, it := range items {
		out[i] = toItemResponse(it)
	}
	return out
}
