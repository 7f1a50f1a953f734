package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/spoonful-labs/recipeshare/internal/model"
	"github.com/spoonful-labs/recipeshare/internal/service"
)

// setupRecipeTestRouter builds a router over an in-memory sqlite database.
// The per-test database name keeps gorm's pooled connections on the same
// shared memory store without leaking state between tests.
func setupRecipeTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	router := gin.New()
	router.GET("/", Welcome)
	handler := NewRecipeHandler(service.NewRecipeService(db))
	handler.RegisterRoutes(router.Group(""))
	return router
}

// createTestRecipe posts a recipe and returns the assigned identifier.
func createTestRecipe(t *testing.T, router *gin.Engine, payload map[string]interface{}) string {
	t.Helper()

	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/recipes", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code, "create failed: %s", w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	id, ok := response["id"].(string)
	require.True(t, ok, "create response missing id")
	return id
}
