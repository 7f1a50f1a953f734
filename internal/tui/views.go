package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spoonful-labs/recipeshare/internal/client"
	"github.com/spoonful-labs/recipeshare/internal/stats"
)

// RFC 3339 strings sort chronologically, so ordering by created_at is a
// plain string comparison.
func sortByCreatedAt(recipes []client.Recipe, newestFirst bool) {
	sort.SliceStable(recipes, func(i, j int) bool {
		if newestFirst {
			return recipes[i].CreatedAt > recipes[j].CreatedAt
		}
		return recipes[i].CreatedAt < recipes[j].CreatedAt
	})
}

func sortByTitle(recipes []client.Recipe) {
	sort.SliceStable(recipes, func(i, j int) bool {
		return strings.ToLower(recipes[i].Title) < strings.ToLower(recipes[j].Title)
	})
}

// View implements tea.Model.
func (m AppModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Recipe Sharing"))
	b.WriteString("\n\n")

	switch m.conn {
	case connUnknown:
		b.WriteString("Connecting to backend API...\n")
		return b.String()
	case connFailed:
		b.WriteString(errorStyle.Render("Cannot connect to backend API."))
		b.WriteString("\n")
		b.WriteString("Please ensure the backend is running.\n\n")
		b.WriteString(helpStyle.Render("r retry • q quit"))
		b.WriteString("\n")
		return b.String()
	}

	switch m.view {
	case viewDetail:
		b.WriteString(m.viewDetailScreen())
	case viewAdd:
		b.WriteString(m.viewAddScreen())
	case viewStats:
		b.WriteString(m.viewStatsScreen())
	default:
		b.WriteString(m.viewListScreen())
	}
	return b.String()
}

func (m AppModel) viewListScreen() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Recipe Collection"))
	b.WriteString("\n\n")

	if m.filtering {
		b.WriteString("Search: " + m.filter.View() + "\n")
	} else if f := strings.TrimSpace(m.filter.Value()); f != "" {
		b.WriteString(dimStyle.Render(fmt.Sprintf("Search: %s", f)) + "\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("Sort: %s", m.sort)) + "\n\n")

	visible := m.visibleRecipes()
	if len(visible) == 0 {
		b.WriteString("No recipes found. Add your first recipe!\n")
	} else {
		b.WriteString(fmt.Sprintf("Found %d recipe(s)\n\n", len(visible)))
		for i, r := range visible {
			line := fmt.Sprintf("%s  %s", r.Title, dimStyle.Render(createdDate(r.CreatedAt)))
			if i == m.cursor {
				line = selectedRowStyle.Render("> " + r.Title)
				if m.confirmDelete {
					line += "  " + warnStyle.Render("delete this recipe? y/n")
				}
			} else {
				line = "  " + line
			}
			b.WriteString(line + "\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsError {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(successStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter view • a add • d delete • / search • s sort • t stats • r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) viewDetailScreen() string {
	var b strings.Builder
	if m.selected == nil {
		b.WriteString("Loading recipe...\n")
		b.WriteString("\n" + helpStyle.Render("b back") + "\n")
		return b.String()
	}

	r := m.selected
	b.WriteString(headerStyle.Render(r.Title))
	b.WriteString("\n")
	if r.Description != nil && *r.Description != "" {
		b.WriteString(dimStyle.Render(*r.Description) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Ingredients:") + "\n")
	for i, ing := range r.Ingredients {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, ing))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Instructions:") + "\n")
	for i, step := range r.Steps {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Created: " + r.CreatedAt))
	b.WriteString("\n\n" + helpStyle.Render("b back") + "\n")
	return b.String()
}

func (m AppModel) viewAddScreen() string {
	var b strings.Builder

	if m.created != nil {
		b.WriteString(successStyle.Render("Recipe created successfully!"))
		b.WriteString("\n\n")
		b.WriteString(headerStyle.Render(m.created.Title) + "\n")
		if m.created.Description != nil {
			b.WriteString(dimStyle.Render(*m.created.Description) + "\n")
		}
		for i, ing := range m.created.Ingredients {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, ing))
		}
		for i, step := range m.created.Steps {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
		b.WriteString("\n" + helpStyle.Render("a add another • esc back to list") + "\n")
		return b.String()
	}

	b.WriteString(headerStyle.Render("Add New Recipe"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Title") + m.titleInput.View() + "\n")
	b.WriteString(labelStyle.Render("Description") + m.descInput.View() + "\n\n")

	b.WriteString(labelStyle.Render("Add ingredient") + m.ingredientInput.View() + "\n")
	for i, ing := range m.draft.Ingredients {
		b.WriteString(m.draftItemLine(fIngredientItem, i, ing))
	}
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Add step") + m.stepInput.View() + "\n")
	for i, step := range m.draft.Steps {
		b.WriteString(m.draftItemLine(fStepItem, i, step))
	}

	b.WriteString("\n")
	submit := "[ Create Recipe ]"
	if kind, _ := m.focusAt(m.focus); kind == fSubmit {
		submit = selectedRowStyle.Render(submit)
	}
	b.WriteString(submit + "\n")

	if m.formError != "" {
		b.WriteString("\n" + errorStyle.Render(m.formError) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↓ next field • enter add entry, remove focused entry, or submit • esc cancel"))
	b.WriteString("\n")
	return b.String()
}

func (m AppModel) draftItemLine(kind focusKind, idx int, text string) string {
	line := fmt.Sprintf("  %d. %s", idx+1, text)
	if k, i := m.focusAt(m.focus); k == kind && i == idx {
		line = selectedRowStyle.Render(line) + dimStyle.Render("  (enter removes)")
	}
	return line + "\n"
}

func (m AppModel) viewStatsScreen() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Recipe Statistics"))
	b.WriteString("\n\n")

	if len(m.recipes) == 0 {
		b.WriteString("No recipes found. Add some recipes to see statistics!\n")
		b.WriteString("\n" + helpStyle.Render("b back • r refresh") + "\n")
		return b.String()
	}

	s := stats.Summarize(m.recipes)

	metrics := []string{
		metricStyle.Render(fmt.Sprintf("Total Recipes\n%d", s.Total)),
		metricStyle.Render(fmt.Sprintf("Avg Ingredients\n%.1f", s.AvgIngredients)),
		metricStyle.Render(fmt.Sprintf("Avg Steps\n%.1f", s.AvgSteps)),
	}
	b.WriteString(strings.Join(metrics, "  "))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Most Common Ingredients:") + "\n")
	for _, ic := range s.TopIngredients {
		b.WriteString(fmt.Sprintf("  • %s: %d times\n", ic.Ingredient, ic.Count))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Recipe Complexity:") + "\n")
	b.WriteString(fmt.Sprintf("  Simple: %d   Medium: %d   Complex: %d\n", s.Simple, s.Medium, s.Complex))

	b.WriteString("\n" + helpStyle.Render("b back • r refresh") + "\n")
	return b.String()
}

// createdDate trims an RFC 3339 timestamp down to its date part for the
// list view.
func createdDate(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}
