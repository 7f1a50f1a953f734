package api

import (
	"time"

	"github.com/spoonful-labs/recipeshare/internal/model"
)

// CreateRecipeRequest is the payload accepted by the create endpoint.
// Ingredients and Steps are pointers so that an absent field fails
// binding while an explicitly empty list is accepted; completeness
// beyond that is enforced by the creation form, not the API.
type CreateRecipeRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description *string   `json:"description"`
	Ingredients *[]string `json:"ingredients" binding:"required"`
	Steps       *[]string `json:"steps" binding:"required"`
}

// RecipeResponse is the serialized recipe shape returned by the read
// endpoints. The identifier is the canonical string form of the store's
// UUID and created_at is ISO-8601.
type RecipeResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	CreatedAt   string   `json:"created_at"`
}

func toRecipeResponse(r model.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Description: r.Description,
		Ingredients: []string(r.Ingredients),
		Steps:       []string(r.Steps),
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
