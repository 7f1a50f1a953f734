package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spoonful-labs/recipeshare/internal/client"
)

func recipeWith(ingredients, steps int) client.Recipe {
	r := client.Recipe{}
	for i := 0; i < ingredients; i++ {
		r.Ingredients = append(r.Ingredients, "ingredient")
	}
	for i := 0; i < steps; i++ {
		r.Steps = append(r.Steps, "step")
	}
	return r
}

func TestClassify(t *testing.T) {
	cases := []struct {
		ingredients int
		steps       int
		want        Complexity
	}{
		{2, 2, Simple},
		{3, 3, Simple},
		{3, 4, Medium},
		{4, 3, Medium},
		{5, 2, Medium},
		{6, 6, Medium},
		{7, 1, Complex},
		{1, 7, Complex},
		{0, 0, Simple},
		{10, 10, Complex},
	}
	for _, tc := range cases {
		got := Classify(tc.ingredients, tc.steps)
		assert.Equal(t, tc.want, got, "ingredients=%d steps=%d", tc.ingredients, tc.steps)
	}
}

func TestClassifyPartitionsEveryRecipe(t *testing.T) {
	// Every count combination lands in exactly one bucket.
	for ingredients := 0; ingredients <= 12; ingredients++ {
		for steps := 0; steps <= 12; steps++ {
			got := Classify(ingredients, steps)
			assert.Contains(t, []Complexity{Simple, Medium, Complex}, got)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.AvgIngredients)
	assert.Zero(t, s.AvgSteps)
	assert.Empty(t, s.TopIngredients)
}

func TestSummarizeAverages(t *testing.T) {
	s := Summarize([]client.Recipe{
		recipeWith(2, 4),
		recipeWith(4, 2),
	})
	assert.Equal(t, 2, s.Total)
	assert.InDelta(t, 3.0, s.AvgIngredients, 0.001)
	assert.InDelta(t, 3.0, s.AvgSteps, 0.001)
}

func TestSummarizeBucketsPartition(t *testing.T) {
	s := Summarize([]client.Recipe{
		recipeWith(2, 2),  // simple
		recipeWith(5, 2),  // medium
		recipeWith(7, 1),  // complex
		recipeWith(3, 3),  // simple
		recipeWith(1, 10), // complex
	})
	assert.Equal(t, 2, s.Simple)
	assert.Equal(t, 1, s.Medium)
	assert.Equal(t, 2, s.Complex)
	assert.Equal(t, s.Total, s.Simple+s.Medium+s.Complex, "buckets must cover every recipe")
}

func TestTopIngredientsRanking(t *testing.T) {
	s := Summarize([]client.Recipe{
		{Ingredients: []string{"egg", "egg", "flour"}, Steps: []string{"mix"}},
		{Ingredients: []string{"egg", "flour"}, Steps: []string{"mix"}},
	})

	require.Len(t, s.TopIngredients, 2)
	assert.Equal(t, IngredientCount{Ingredient: "egg", Count: 3}, s.TopIngredients[0])
	assert.Equal(t, IngredientCount{Ingredient: "flour", Count: 2}, s.TopIngredients[1])
}

func TestTopIngredientsTieKeepsFirstEncounteredOrder(t *testing.T) {
	s := Summarize([]client.Recipe{
		{Ingredients: []string{"salt", "pepper"}, Steps: []string{"season"}},
		{Ingredients: []string{"pepper", "salt"}, Steps: []string{"season"}},
	})

	require.Len(t, s.TopIngredients, 2)
	assert.Equal(t, "salt", s.TopIngredients[0].Ingredient)
	assert.Equal(t, "pepper", s.TopIngredients[1].Ingredient)
}

func TestTopIngredientsLimit(t *testing.T) {
	recipes := []client.Recipe{{
		Ingredients: []string{"a", "b", "c", "d", "e", "f", "g"},
		Steps:       []string{"cook"},
	}}
	s := Summarize(recipes)
	assert.Len(t, s.TopIngredients, 5)
}
