// Package tui implements the interactive terminal frontend: a Bubble Tea
// model with list, detail, add and statistics views over the recipe API
// client. One user action runs to completion before the next is handled;
// all network work happens inside tea.Cmds and comes back as typed
// messages, so Update stays a pure state transition.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spoonful-labs/recipeshare/internal/client"
)

type viewState int

const (
	viewList viewState = iota
	viewDetail
	viewAdd
	viewStats
)

type connState int

const (
	connUnknown connState = iota
	connOK
	connFailed
)

type sortMode int

const (
	sortNewest sortMode = iota
	sortOldest
	sortTitle
)

func (s sortMode) String() string {
	switch s {
	case sortOldest:
		return "oldest"
	case sortTitle:
		return "title"
	default:
		return "newest"
	}
}

// Focus targets on the add screen. Items between the fixed targets are
// the accumulated draft entries; focusing one and pressing enter removes
// it.
type focusKind int

const (
	fTitle focusKind = iota
	fDescription
	fIngredientInput
	fIngredientItem
	fStepInput
	fStepItem
	fSubmit
)

// AppModel is the top-level Bubble Tea model.
type AppModel struct {
	client *client.RecipeClient

	view viewState
	conn connState

	// List screen
	recipes       []client.Recipe
	cursor        int
	filter        textinput.Model
	filtering     bool
	sort          sortMode
	confirmDelete bool
	status        string
	statusIsError bool

	// Detail screen
	selectedID string
	selected   *client.Recipe

	// Add screen
	draft           Draft
	titleInput      textinput.Model
	descInput       textinput.Model
	ingredientInput textinput.Model
	stepInput       textinput.Model
	focus           int
	formError       string
	created         *client.Recipe

	width  int
	height int
}

// New creates the app model wired to the given API client.
func New(c *client.RecipeClient) AppModel {
	filter := textinput.New()
	filter.Placeholder = "Enter recipe name..."
	filter.CharLimit = 64

	title := textinput.New()
	title.Placeholder = "e.g., Spaghetti Carbonara"
	title.CharLimit = 255

	desc := textinput.New()
	desc.Placeholder = "Brief description of the recipe..."
	desc.CharLimit = 255

	ingredient := textinput.New()
	ingredient.Placeholder = "e.g., 200g spaghetti"
	ingredient.CharLimit = 128

	step := textinput.New()
	step.Placeholder = "e.g., Boil water and cook pasta"
	step.CharLimit = 255

	return AppModel{
		client:          c,
		view:            viewList,
		conn:            connUnknown,
		filter:          filter,
		titleInput:      title,
		descInput:       desc,
		ingredientInput: ingredient,
		stepInput:       step,
	}
}

// Init implements tea.Model. The connectivity gate runs before any
// data-driven screen is rendered.
func (m AppModel) Init() tea.Cmd {
	return checkConnectionCmd(m.client)
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case connCheckedMsg:
		return m.handleConnChecked(msg)

	case recipesLoadedMsg:
		m.recipes = msg.recipes
		m.clampCursor()
		return m, nil

	case recipeLoadedMsg:
		return m.handleRecipeLoaded(msg)

	case recipeCreatedMsg:
		return m.handleRecipeCreated(msg)

	case recipeDeletedMsg:
		return m.handleRecipeDeleted(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleConnChecked(msg connCheckedMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		m.conn = connFailed
		return m, nil
	}
	m.conn = connOK
	return m, fetchRecipesCmd(m.client)
}

func (m AppModel) handleRecipeLoaded(msg recipeLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.recipe == nil {
		// Not found or unreachable: surface an error and fall back.
		m.selected = nil
		m.selectedID = ""
		m.view = viewList
		m.setStatus("Recipe not found", true)
		return m, nil
	}
	m.selected = msg.recipe
	return m, nil
}

func (m AppModel) handleRecipeCreated(msg recipeCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.result == nil {
		// Keep the draft so the user can retry.
		m.formError = "Failed to create recipe. Please try again."
		return m, nil
	}

	created := client.Recipe{
		ID:          msg.result.ID,
		Title:       msg.payload.Title,
		Description: msg.payload.Description,
		Ingredients: msg.payload.Ingredients,
		Steps:       msg.payload.Steps,
		CreatedAt:   "just now",
	}
	m.created = &created
	m.formError = ""
	m.resetForm()
	return m, fetchRecipesCmd(m.client)
}

func (m AppModel) handleRecipeDeleted(msg recipeDeletedMsg) (tea.Model, tea.Cmd) {
	m.confirmDelete = false
	if !msg.ok {
		m.setStatus("Failed to delete recipe", true)
		return m, nil
	}
	m.setStatus("Recipe deleted successfully", false)
	return m, fetchRecipesCmd(m.client)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Connectivity-error state: only retry or quit until the backend is
	// reachable again.
	if m.conn != connOK {
		switch msg.String() {
		case "r", "enter":
			m.conn = connUnknown
			return m, checkConnectionCmd(m.client)
		case "q":
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.view {
	case viewList:
		return m.handleListKey(msg)
	case viewDetail:
		return m.handleDetailKey(msg)
	case viewAdd:
		return m.handleAddKey(msg)
	case viewStats:
		return m.handleStatsKey(msg)
	}
	return m, nil
}

func (m AppModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			m.clampCursor()
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.clampCursor()
		return m, cmd
	}

	// A pending delete needs explicit confirmation before the client is
	// called; any other key cancels it.
	if m.confirmDelete {
		if msg.String() == "y" {
			visible := m.visibleRecipes()
			if m.cursor < len(visible) {
				return m, deleteRecipeCmd(m.client, visible[m.cursor].ID)
			}
			m.confirmDelete = false
			return m, nil
		}
		m.confirmDelete = false
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visibleRecipes())-1 {
			m.cursor++
		}
	case "/":
		m.filtering = true
		m.filter.Focus()
		m.status = ""
	case "s":
		m.sort = (m.sort + 1) % 3
	case "r":
		return m, fetchRecipesCmd(m.client)
	case "enter", "v":
		visible := m.visibleRecipes()
		if m.cursor < len(visible) {
			m.selectedID = visible[m.cursor].ID
			m.selected = nil
			m.view = viewDetail
			return m, fetchRecipeCmd(m.client, m.selectedID)
		}
	case "d":
		if len(m.visibleRecipes()) > 0 {
			m.confirmDelete = true
		}
	case "a":
		m.enterAddView()
	case "t":
		m.view = viewStats
		return m, fetchRecipesCmd(m.client)
	}
	return m, nil
}

func (m AppModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.view = viewList
		m.selected = nil
		m.selectedID = ""
	}
	return m, nil
}

func (m AppModel) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.view = viewList
	case "r":
		return m, fetchRecipesCmd(m.client)
	}
	return m, nil
}

func (m AppModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// After a successful create the screen shows the created recipe.
	if m.created != nil {
		switch msg.String() {
		case "a":
			m.created = nil
			m.enterAddView()
		case "esc", "enter", "b":
			m.created = nil
			m.view = viewList
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Navigating away discards the draft.
		m.resetForm()
		m.view = viewList
		return m, nil
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		return m.handleAddEnter()
	}

	var cmd tea.Cmd
	switch kind, _ := m.focusAt(m.focus); kind {
	case fTitle:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case fDescription:
		m.descInput, cmd = m.descInput.Update(msg)
	case fIngredientInput:
		m.ingredientInput, cmd = m.ingredientInput.Update(msg)
	case fStepInput:
		m.stepInput, cmd = m.stepInput.Update(msg)
	}
	return m, cmd
}

func (m AppModel) handleAddEnter() (tea.Model, tea.Cmd) {
	kind, idx := m.focusAt(m.focus)
	switch kind {
	case fTitle, fDescription:
		m.moveFocus(1)
	case fIngredientInput:
		if m.draft.AddIngredient(m.ingredientInput.Value()) {
			m.ingredientInput.SetValue("")
			m.formError = ""
		}
	case fIngredientItem:
		m.draft.RemoveIngredient(idx)
		m.clampFocus()
	case fStepInput:
		if m.draft.AddStep(m.stepInput.Value()) {
			m.stepInput.SetValue("")
			m.formError = ""
		}
	case fStepItem:
		m.draft.RemoveStep(idx)
		m.clampFocus()
	case fSubmit:
		title := strings.TrimSpace(m.titleInput.Value())
		if errMsg := validateSubmission(title, m.draft); errMsg != "" {
			m.formError = errMsg
			return m, nil
		}
		var desc *string
		if d := strings.TrimSpace(m.descInput.Value()); d != "" {
			desc = &d
		}
		payload := client.CreateRecipeRequest{
			Title:       title,
			Description: desc,
			Ingredients: append([]string(nil), m.draft.Ingredients...),
			Steps:       append([]string(nil), m.draft.Steps...),
		}
		return m, createRecipeCmd(m.client, payload)
	}
	return m, nil
}

// enterAddView switches to the add screen with a fresh draft.
func (m *AppModel) enterAddView() {
	m.view = viewAdd
	m.resetForm()
	m.created = nil
}

func (m *AppModel) resetForm() {
	m.draft.Reset()
	m.titleInput.SetValue("")
	m.descInput.SetValue("")
	m.ingredientInput.SetValue("")
	m.stepInput.SetValue("")
	m.formError = ""
	m.focus = 0
	m.syncFocus()
}

func (m *AppModel) setStatus(text string, isError bool) {
	m.status = text
	m.statusIsError = isError
}

// focusAt maps a flat focus index onto the add screen's focus targets:
// title, description, ingredient input, one target per draft ingredient,
// step input, one target per draft step, submit.
func (m *AppModel) focusAt(i int) (focusKind, int) {
	if i <= 0 {
		return fTitle, 0
	}
	if i == 1 {
		return fDescription, 0
	}
	if i == 2 {
		return fIngredientInput, 0
	}
	i -= 3
	if i < len(m.draft.Ingredients) {
		return fIngredientItem, i
	}
	i -= len(m.draft.Ingredients)
	if i == 0 {
		return fStepInput, 0
	}
	i--
	if i < len(m.draft.Steps) {
		return fStepItem, i
	}
	return fSubmit, 0
}

func (m *AppModel) focusCount() int {
	return 5 + len(m.draft.Ingredients) + len(m.draft.Steps)
}

func (m *AppModel) moveFocus(delta int) {
	n := m.focusCount()
	m.focus = (m.focus + delta + n) % n
	m.syncFocus()
}

func (m *AppModel) clampFocus() {
	if m.focus >= m.focusCount() {
		m.focus = m.focusCount() - 1
	}
	m.syncFocus()
}

func (m *AppModel) syncFocus() {
	m.titleInput.Blur()
	m.descInput.Blur()
	m.ingredientInput.Blur()
	m.stepInput.Blur()
	switch kind, _ := m.focusAt(m.focus); kind {
	case fTitle:
		m.titleInput.Focus()
	case fDescription:
		m.descInput.Focus()
	case fIngredientInput:
		m.ingredientInput.Focus()
	case fStepInput:
		m.stepInput.Focus()
	}
}

// visibleRecipes applies the case-insensitive title filter and the
// current sort mode to the fetched list. Sorting is a UI concern; the
// API returns natural order.
func (m *AppModel) visibleRecipes() []client.Recipe {
	out := make([]client.Recipe, 0, len(m.recipes))
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	for _, r := range m.recipes {
		if needle == "" || strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}

	switch m.sort {
	case sortNewest:
		sortByCreatedAt(out, true)
	case sortOldest:
		sortByCreatedAt(out, false)
	case sortTitle:
		sortByTitle(out)
	}
	return out
}

func (m *AppModel) clampCursor() {
	if n := len(m.visibleRecipes()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
