package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, handler http.HandlerFunc) *RecipeClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

// newDeadClient points at a server that has already been shut down, so
// every call fails at the transport level.
func newDeadClient(t *testing.T) *RecipeClient {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return New(url)
}

func TestListAll(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes", r.URL.Path)
		json.NewEncoder(w).Encode([]Recipe{
			{ID: "1", Title: "Pancakes"},
			{ID: "2", Title: "Soup"},
		})
	})

	recipes := c.ListAll()
	require.Len(t, recipes, 2)
	assert.Equal(t, "Pancakes", recipes[0].Title)
}

func TestListAllSwallowsFailures(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	assert.Empty(t, c.ListAll(), "error status yields an empty list")

	assert.Empty(t, newDeadClient(t).ListAll(), "transport failure yields an empty list")
}

func TestGetByID(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/abc", r.URL.Path)
		json.NewEncoder(w).Encode(Recipe{ID: "abc", Title: "Soup"})
	})

	recipe := c.GetByID("abc")
	require.NotNil(t, recipe)
	assert.Equal(t, "Soup", recipe.Title)
}

func TestGetByIDSwallowsFailures(t *testing.T) {
	// Not-found and transport errors are indistinguishable by contract:
	// both come back as nil.
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.Nil(t, c.GetByID("abc"))

	assert.Nil(t, newDeadClient(t).GetByID("abc"))
}

func TestCreate(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req CreateRecipeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Pancakes", req.Title)

		json.NewEncoder(w).Encode(CreateResult{Message: "Recipe added successfully", ID: "new-id"})
	})

	result := c.Create(CreateRecipeRequest{
		Title:       "Pancakes",
		Ingredients: []string{"flour"},
		Steps:       []string{"fry"},
	})
	require.NotNil(t, result)
	assert.Equal(t, "new-id", result.ID)
}

func TestCreateSwallowsFailures(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	})
	assert.Nil(t, c.Create(CreateRecipeRequest{Title: ""}))

	assert.Nil(t, newDeadClient(t).Create(CreateRecipeRequest{Title: "x"}))
}

func TestDelete(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(map[string]string{"message": "Recipe deleted successfully"})
	})
	assert.True(t, c.Delete("abc"))
}

func TestDeleteSwallowsFailures(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	assert.False(t, c.Delete("abc"), "not-found deletes report false")

	assert.False(t, newDeadClient(t).Delete("abc"))
}

func TestTestConnection(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Recipe{})
	})
	assert.True(t, c.TestConnection())

	assert.False(t, newDeadClient(t).TestConnection())
}
