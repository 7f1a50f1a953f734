// Package stats derives aggregate statistics from a recipe list snapshot.
// Nothing here is persisted; every summary is recomputed from the latest
// fetch.
package stats

import (
	"sort"

	"github.com/samber/lo"

	"github.com/spoonful-labs/recipeshare/internal/client"
)

// Complexity buckets a recipe by ingredient and step counts. The buckets
// are mutually exclusive and cover every recipe.
type Complexity int

const (
	Simple Complexity = iota
	Medium
	Complex
)

func (c Complexity) String() string {
	switch c {
	case Simple:
		return "simple"
	case Complex:
		return "complex"
	default:
		return "medium"
	}
}

// Classify buckets one recipe. Simple requires both counts at or below 3;
// complex requires either count above 6; medium is everything else. The
// asymmetry between the simple and complex conditions is intentional.
func Classify(ingredients, steps int) Complexity {
	switch {
	case ingredients <= 3 && steps <= 3:
		return Simple
	case ingredients > 6 || steps > 6:
		return Complex
	default:
		return Medium
	}
}

// IngredientCount pairs an ingredient string with its exact-match
// frequency across all recipes.
type IngredientCount struct {
	Ingredient string
	Count      int
}

// Summary holds the aggregate view over one recipe list.
type Summary struct {
	Total          int
	AvgIngredients float64
	AvgSteps       float64
	TopIngredients []IngredientCount
	Simple         int
	Medium         int
	Complex        int
}

// Summarize computes the full summary for a snapshot of recipes.
func Summarize(recipes []client.Recipe) Summary {
	s := Summary{Total: len(recipes)}
	if s.Total == 0 {
		return s
	}

	totalIngredients := lo.SumBy(recipes, func(r client.Recipe) int { return len(r.Ingredients) })
	totalSteps := lo.SumBy(recipes, func(r client.Recipe) int { return len(r.Steps) })
	s.AvgIngredients = float64(totalIngredients) / float64(s.Total)
	s.AvgSteps = float64(totalSteps) / float64(s.Total)

	s.TopIngredients = topIngredients(recipes, 5)

	for _, r := range recipes {
		switch Classify(len(r.Ingredients), len(r.Steps)) {
		case Simple:
			s.Simple++
		case Complex:
			s.Complex++
		default:
			s.Medium++
		}
	}

	return s
}

// topIngredients ranks ingredient strings by frequency. Ties keep the
// order in which the ingredient was first encountered.
func topIngredients(recipes []client.Recipe, limit int) []IngredientCount {
	counts := map[string]int{}
	var order []string
	for _, r := range recipes {
		for _, ing := range r.Ingredients {
			if _, seen := counts[ing]; !seen {
				order = append(order, ing)
			}
			counts[ing]++
		}
	}

	ranked := lo.Map(order, func(ing string, _ int) IngredientCount {
		return IngredientCount{Ingredient: ing, Count: counts[ing]}
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
