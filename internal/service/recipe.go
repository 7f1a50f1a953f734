package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/spoonful-labs/recipeshare/internal/model"
)

// ErrRecipeNotFound is returned when no record matches a well-formed identifier.
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrStoreUnavailable wraps any store failure other than a missing record.
var ErrStoreUnavailable = errors.New("store unavailable")

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe inserts a new recipe and returns it with the assigned
// identifier. CreatedAt is defaulted to the current UTC time when unset
// and never mutated afterwards.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return recipe, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &recipe, nil
}

// DeleteRecipe removes a recipe by ID. Deletion is final; a repeat call
// for the same identifier reports ErrRecipeNotFound rather than
// succeeding silently.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

// ListRecipes returns all recipes in the store's natural order. Callers
// that need a particular ordering sort on their side.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return recipes, nil
}
