package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spoonful-labs/recipeshare/internal/model"
)

func setupService(t *testing.T) *RecipeService {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))
	return NewRecipeService(db)
}

func TestCreateRecipeAssignsIDAndTimestamp(t *testing.T) {
	svc := setupService(t)

	recipe := &model.Recipe{
		Title:       "Pancakes",
		Ingredients: model.JSONBStringArray{"flour", "eggs", "milk"},
		Steps:       model.JSONBStringArray{"whisk", "fry"},
	}
	created, err := svc.CreateRecipe(context.Background(), recipe)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), created.CreatedAt, 5*time.Second)
}

func TestCreateRecipePreservesGivenTimestamp(t *testing.T) {
	svc := setupService(t)

	given := time.Date(2023, 4, 1, 12, 0, 0, 0, time.UTC)
	recipe := &model.Recipe{
		Title:       "Old Recipe",
		CreatedAt:   given,
		Ingredients: model.JSONBStringArray{"salt"},
		Steps:       model.JSONBStringArray{"season"},
	}
	created, err := svc.CreateRecipe(context.Background(), recipe)
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Equal(given))
}

func TestGetRecipeRoundTrip(t *testing.T) {
	svc := setupService(t)

	desc := "A classic."
	created, err := svc.CreateRecipe(context.Background(), &model.Recipe{
		Title:       "Carbonara",
		Description: &desc,
		Ingredients: model.JSONBStringArray{"spaghetti", "eggs"},
		Steps:       model.JSONBStringArray{"boil", "mix"},
	})
	require.NoError(t, err)

	got, err := svc.GetRecipe(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Carbonara", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, desc, *got.Description)
	assert.Equal(t, model.JSONBStringArray{"spaghetti", "eggs"}, got.Ingredients)
	assert.Equal(t, model.JSONBStringArray{"boil", "mix"}, got.Steps)
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.GetRecipe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	svc := setupService(t)

	created, err := svc.CreateRecipe(context.Background(), &model.Recipe{
		Title:       "Soup",
		Ingredients: model.JSONBStringArray{"water"},
		Steps:       model.JSONBStringArray{"heat"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(context.Background(), created.ID))

	_, err = svc.GetRecipe(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	// Deleting again must report not-found, not silently succeed.
	err = svc.DeleteRecipe(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestListRecipes(t *testing.T) {
	svc := setupService(t)

	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)

	for _, title := range []string{"One", "Two", "Three"} {
		_, err := svc.CreateRecipe(context.Background(), &model.Recipe{
			Title:       title,
			Ingredients: model.JSONBStringArray{"x"},
			Steps:       model.JSONBStringArray{"y"},
		})
		require.NoError(t, err)
	}

	recipes, err = svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Len(t, recipes, 3)
}
