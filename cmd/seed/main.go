package main

import (
	"log"

	"github.com/spoonful-labs/recipeshare/config"
	"github.com/spoonful-labs/recipeshare/internal/client"
)

func ptr(s string) *string { return &s }

var sampleRecipes = []client.CreateRecipeRequest{
	{
		Title:       "Spaghetti Carbonara",
		Description: ptr("A classic Italian pasta dish."),
		Ingredients: []string{"spaghetti", "eggs", "cheese", "bacon"},
		Steps:       []string{"Boil pasta", "Cook bacon", "Mix ingredients"},
	},
	{
		Title:       "Greek Salad",
		Description: ptr("Fresh vegetables with feta and olives."),
		Ingredients: []string{"tomatoes", "cucumber", "feta", "olives", "red onion", "olive oil"},
		Steps:       []string{"Chop vegetables", "Combine in bowl", "Dress with olive oil"},
	},
	{
		Title:       "Pancakes",
		Description: nil,
		Ingredients: []string{"flour", "eggs", "milk"},
		Steps:       []string{"Whisk batter", "Fry on both sides"},
	},
	{
		Title:       "Vegetable Stir-Fry",
		Description: ptr("Quick weeknight dinner with whatever is in the fridge."),
		Ingredients: []string{"broccoli", "carrots", "bell pepper", "soy sauce", "garlic", "ginger", "rice"},
		Steps: []string{
			"Cook rice",
			"Chop vegetables",
			"Heat oil in wok",
			"Fry garlic and ginger",
			"Add vegetables and stir-fry",
			"Season with soy sauce",
			"Serve over rice",
		},
	},
	{
		Title:       "Tomato Soup",
		Description: ptr("Simple and warming."),
		Ingredients: []string{"tomatoes", "onion", "garlic", "stock"},
		Steps:       []string{"Soften onion and garlic", "Add tomatoes and stock", "Simmer and blend"},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c := client.New(cfg.BackendURL)
	if !c.TestConnection() {
		log.Fatalf("Backend at %s is not reachable", cfg.BackendURL)
	}

	created := 0
	for _, recipe := range sampleRecipes {
		result := c.Create(recipe)
		if result == nil {
			log.Printf("Failed to create %q", recipe.Title)
			continue
		}
		log.Printf("Created %q (id %s)", recipe.Title, result.ID)
		created++
	}
	log.Printf("Seeded %d/%d recipes", created, len(sampleRecipes))
}
