// Package client is the thin HTTP caller the UI uses to reach the API.
// Every operation converts transport and status failures into an empty,
// nil, or false result instead of returning an error: the UI never has to
// distinguish "not found" from "backend down", it only ever sees "no
// recipe". Failures are logged so they are not lost entirely.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Recipe is the wire shape returned by the API. CreatedAt stays a string;
// RFC 3339 text sorts chronologically, which is all the UI needs.
type Recipe struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	CreatedAt   string   `json:"created_at"`
}

// CreateRecipeRequest is the payload sent to the create endpoint.
type CreateRecipeRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// CreateResult is the server's confirmation for a successful create.
type CreateResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// RecipeClient talks to the recipe API.
type RecipeClient struct {
	baseURL string
	http    *http.Client
}

// New builds a client for the API at baseURL. Requests use an explicit
// finite timeout; expiry counts as a transport failure like any other.
func New(baseURL string) *RecipeClient {
	return &RecipeClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

func (c *RecipeClient) recipesURL() string {
	return c.baseURL + "/recipes"
}

// ListAll fetches every recipe. Any failure yields an empty slice.
func (c *RecipeClient) ListAll() []Recipe {
	resp, err := c.http.Get(c.recipesURL())
	if err != nil {
		log.Printf("recipe client: error fetching recipes: %v", err)
		return []Recipe{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("recipe client: error fetching recipes: status %d", resp.StatusCode)
		return []Recipe{}
	}

	var recipes []Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		log.Printf("recipe client: error decoding recipes: %v", err)
		return []Recipe{}
	}
	return recipes
}

// GetByID fetches one recipe. Not-found and transport failures are
// indistinguishable to the caller; both return nil.
func (c *RecipeClient) GetByID(id string) *Recipe {
	resp, err := c.http.Get(fmt.Sprintf("%s/%s", c.recipesURL(), id))
	if err != nil {
		log.Printf("recipe client: error fetching recipe %s: %v", id, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("recipe client: error fetching recipe %s: status %d", id, resp.StatusCode)
		return nil
	}

	var recipe Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipe); err != nil {
		log.Printf("recipe client: error decoding recipe %s: %v", id, err)
		return nil
	}
	return &recipe
}

// Create submits a new recipe and returns the server's confirmation, or
// nil on any failure.
func (c *RecipeClient) Create(payload CreateRecipeRequest) *CreateResult {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("recipe client: error encoding recipe: %v", err)
		return nil
	}

	resp, err := c.http.Post(c.recipesURL(), "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("recipe client: error creating recipe: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("recipe client: error creating recipe: status %d", resp.StatusCode)
		return nil
	}

	var result CreateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("recipe client: error decoding create result: %v", err)
		return nil
	}
	return &result
}

// Delete removes a recipe by id. Any failure, including not-found,
// yields false.
func (c *RecipeClient) Delete(id string) bool {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/%s", c.recipesURL(), id), nil)
	if err != nil {
		log.Printf("recipe client: error building delete request: %v", err)
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("recipe client: error deleting recipe %s: %v", id, err)
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("recipe client: error deleting recipe %s: status %d", id, resp.StatusCode)
		return false
	}
	return true
}

// TestConnection reports whether the backend is reachable. The UI calls
// this before rendering any data-driven screen.
func (c *RecipeClient) TestConnection() bool {
	resp, err := c.http.Get(c.recipesURL())
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode == http.StatusOK
}
