package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoonful-labs/recipeshare/internal/client"
)

// connCheckedMsg reports the result of a backend reachability probe.
type connCheckedMsg struct {
	ok bool
}

// recipesLoadedMsg carries a fresh list snapshot. A failed fetch arrives
// as an empty slice; the client never surfaces errors.
type recipesLoadedMsg struct {
	recipes []client.Recipe
}

// recipeLoadedMsg carries a single fetched recipe, nil when it could not
// be retrieved.
type recipeLoadedMsg struct {
	recipe *client.Recipe
}

// recipeCreatedMsg reports the outcome of a create call along with the
// payload that was submitted, so the created recipe can be displayed.
type recipeCreatedMsg struct {
	result  *client.CreateResult
	payload client.CreateRecipeRequest
}

// recipeDeletedMsg reports the outcome of a delete call.
type recipeDeletedMsg struct {
	id string
	ok bool
}

func checkConnectionCmd(c *client.RecipeClient) tea.Cmd {
	return func() tea.Msg {
		return connCheckedMsg{ok: c.TestConnection()}
	}
}

func fetchRecipesCmd(c *client.RecipeClient) tea.Cmd {
	return func() tea.Msg {
		return recipesLoadedMsg{recipes: c.ListAll()}
	}
}

func fetchRecipeCmd(c *client.RecipeClient, id string) tea.Cmd {
	return func() tea.Msg {
		return recipeLoadedMsg{recipe: c.GetByID(id)}
	}
}

func createRecipeCmd(c *client.RecipeClient, payload client.CreateRecipeRequest) tea.Cmd {
	return func() tea.Msg {
		return recipeCreatedMsg{result: c.Create(payload), payload: payload}
	}
}

func deleteRecipeCmd(c *client.RecipeClient, id string) tea.Cmd {
	return func() tea.Msg {
		return recipeDeletedMsg{id: id, ok: c.Delete(id)}
	}
}
