package tui

import "strings"

// Draft holds the not-yet-submitted ingredient and step lists accumulated
// on the add-recipe screen. It lives only for that screen's lifetime: it
// is reset when the screen is entered and cleared again on a successful
// submission, but kept intact when a submission fails so the user can
// retry.
type Draft struct {
	Ingredients []string
	Steps       []string
}

// AddIngredient appends trimmed text to the ingredient list. Blank or
// whitespace-only input is a no-op, not an error.
func (d *Draft) AddIngredient(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	d.Ingredients = append(d.Ingredients, text)
	return true
}

// RemoveIngredient deletes the ingredient at position i.
func (d *Draft) RemoveIngredient(i int) bool {
	if i < 0 || i >= len(d.Ingredients) {
		return false
	}
	d.Ingredients = append(d.Ingredients[:i], d.Ingredients[i+1:]...)
	return true
}

// AddStep appends trimmed text to the step list, with the same blank
// handling as AddIngredient.
func (d *Draft) AddStep(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	d.Steps = append(d.Steps, text)
	return true
}

// RemoveStep deletes the step at position i.
func (d *Draft) RemoveStep(i int) bool {
	if i < 0 || i >= len(d.Steps) {
		return false
	}
	d.Steps = append(d.Steps[:i], d.Steps[i+1:]...)
	return true
}

// Reset discards all accumulated entries.
func (d *Draft) Reset() {
	d.Ingredients = nil
	d.Steps = nil
}

// validateSubmission enforces the form's completeness rules: a non-empty
// trimmed title, at least one ingredient and at least one step. These are
// stricter than the API schema, which accepts empty lists; the divergence
// is deliberate. Returns an empty string when the draft is submittable.
func validateSubmission(title string, d Draft) string {
	if strings.TrimSpace(title) == "" {
		return "Recipe title is required"
	}
	if len(d.Ingredients) == 0 {
		return "At least one ingredient is required"
	}
	if len(d.Steps) == 0 {
		return "At least one step is required"
	}
	return ""
}
