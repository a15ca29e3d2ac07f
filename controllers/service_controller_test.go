package controllers

import (
	"net/http"
	"testing"

	"github.com/pr-poehali-dev/phone-repair-api/config"
	"github.com/pr-poehali-dev/phone-repair-api/models"
	"github.com/pr-poehali-dev/phone-repair-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateService(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.POST("/api/services", CreateService)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedActive bool
	}{
		{
			name: "Create service with explicit fields",
			requestBody: map[string]interface{}{
				"title":       "Screen replacement",
				"description": "Original displays for most models",
				"price":       2490.50,
				"icon":        "smartphone",
				"category":    "repair",
				"is_active":   true,
			},
			expectedActive: true,
		},
		{
			name: "Service is active by default",
			requestBody: map[string]interface{}{
				"title": "Battery replacement",
			},
			expectedActive: true,
		},
		{
			name: "Service can be created inactive",
			requestBody: map[string]interface{}{
				"title":     "Water damage diagnostics",
				"is_active": false,
			},
			expectedActive: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformJSON(t, router, http.MethodPost, "/api/services", tt.requestBody)
			assert.Equal(t, http.StatusCreated, w.Code)

			response := testutil.ParseResponse(t, w)
			assert.True(t, response["success"].(bool))
			assert.Equal(t, "Service created", response["message"])
			serviceID, ok := response["service_id"].(float64)
			require.True(t, ok, "service_id should be numeric")

			var service models.Service
			require.NoError(t, config.GetDB().First(&service, uint(serviceID)).Error)
			require.NotNil(t, service.IsActive)
			assert.Equal(t, tt.expectedActive, *service.IsActive)
		})
	}
}

func TestListServicesVisibilityAndOrder(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.POST("/api/services", CreateService)
	router.GET("/api/services", ListServices)

	seed := []map[string]interface{}{
		{"title": "Screen replacement", "price": 2490.50, "is_active": true},
		{"title": "Legacy soldering", "is_active": false},
		{"title": "Battery replacement", "price": 1290.0, "is_active": true},
	}
	for _, body := range seed {
		w := testutil.PerformJSON(t, router, http.MethodPost, "/api/services", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// The storefront view hides inactive entries
	w := testutil.PerformJSON(t, router, http.MethodGet, "/api/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	response := testutil.ParseResponse(t, w)
	services := response["services"].([]interface{})
	require.Len(t, services, 2)
	assert.Equal(t, "Screen replacement", services[0].(map[string]interface{})["title"])
	assert.Equal(t, "Battery replacement", services[1].(map[string]interface{})["title"])

	// The admin view includes inactive entries, ascending by id
	w = testutil.PerformJSON(t, router, http.MethodGet, "/api/services?all=true", nil)
	response = testutil.ParseResponse(t, w)
	services = response["services"].([]interface{})
	require.Len(t, services, 3)
	var lastID float64
	for _, raw := range services {
		id := raw.(map[string]interface{})["id"].(float64)
		assert.Greater(t, id, lastID, "services must be ordered ascending by id")
		lastID = id
	}
}

// A service created with a price lists the same price back; a missing
// price normalizes to 0, never null.
func TestServicePriceRoundTrip(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.POST("/api/services", CreateService)
	router.GET("/api/services", ListServices)

	w := testutil.PerformJSON(t, router, http.MethodPost, "/api/services",
		map[string]interface{}{"title": "Screen replacement", "price": 2490.50})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.PerformJSON(t, router, http.MethodPost, "/api/services",
		map[string]interface{}{"title": "Diagnostics"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = testutil.PerformJSON(t, router, http.MethodGet, "/api/services", nil)
	response := testutil.ParseResponse(t, w)
	services := response["services"].([]interface{})
	require.Len(t, services, 2)

	priced := services[0].(map[string]interface{})
	free := services[1].(map[string]interface{})
	assert.Equal(t, 2490.50, priced["price"])
	assert.Equal(t, float64(0), free["price"])
}

func TestUpdateService(t *testing.T) {
	db := setupTestDB(t)

	router := setupTestRouter()
	router.POST("/api/services", CreateService)
	router.PUT("/api/services", UpdateService)

	w := testutil.PerformJSON(t, router, http.MethodPost, "/api/services", map[string]interface{}{
		"title":       "Screen replacement",
		"description": "Original displays",
		"price":       2490.50,
		"category":    "repair",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := testutil.ParseResponse(t, w)["service_id"].(float64)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name: "Full update overwrites every field",
			requestBody: map[string]interface{}{
				"id":          serviceID,
				"title":       "Display replacement",
				"description": "OLED and LCD displays",
				"price":       2990.0,
				"icon":        "monitor",
				"category":    "repair",
				"is_active":   false,
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Updating an unknown id still succeeds",
			requestBody:    map[string]interface{}{"id": 999, "title": "Ghost"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Fail with missing id",
			requestBody:    map[string]interface{}{"title": "No id"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.PerformJSON(t, router, http.MethodPut, "/api/services", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	var updated models.Service
	require.NoError(t, db.First(&updated, uint(serviceID)).Error)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Display replacement", *updated.Title)
	require.NotNil(t, updated.Price)
	assert.Equal(t, 2990.0, *updated.Price)
	require.NotNil(t, updated.IsActive)
	assert.False(t, *updated.IsActive)
}

// The update is a single unconditional overwrite: fields absent from
// the payload are written as NULL, not left alone.
func TestUpdateServiceAbsentFieldsOverwritten(t *testing.T) {
	db := setupTestDB(t)

	router := setupTestRouter()
	router.POST("/api/services", CreateService)
	router.PUT("/api/services", UpdateService)

	w := testutil.PerformJSON(t, router, http.MethodPost, "/api/services", map[string]interface{}{
		"title":       "Screen replacement",
		"description": "Original displays",
		"price":       2490.50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := testutil.ParseResponse(t, w)["service_id"].(float64)

	w = testutil.PerformJSON(t, router, http.MethodPut, "/api/services",
		map[string]interface{}{"id": serviceID, "title": "Screen replacement"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Service
	require.NoError(t, db.First(&updated, uint(serviceID)).Error)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Screen replacement", *updated.Title)
	assert.Nil(t, updated.Description)
	assert.Nil(t, updated.Price)
	assert.Nil(t, updated.IsActive)
}
