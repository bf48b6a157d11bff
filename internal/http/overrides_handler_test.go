package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/guttosm/packlist-service/internal/mocks"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
)

func newOverridesTestRouter(overridesService *mocks.MockOverridesService, packlistHandler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewOverridesHandler(overridesService, packlistHandler)
	router := gin.New()
	router.GET("/api/overrides", handler.ListOverrides)
	router.PUT("/api/overrides", handler.SetOverride)
	router.DELETE("/api/overrides", handler.DeleteOverride)
	return router
}

func TestListOverrides_Success(t *testing.T) {
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("List", mock.Anything).Return([]repository.OverrideDocument{
		{Key: "Clothes__Hat", Category: "Clothes", Name: "Hat", Bag: model.BagCarryOn},
	}, nil)

	router := newOverridesTestRouter(overridesService, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/overrides", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []repository.OverrideDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Clothes__Hat", envelope.Data[0].Key)
	assert.Equal(t, model.BagCarryOn, envelope.Data[0].Bag)
}

func TestListOverrides_StoreUnavailable(t *testing.T) {
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	router := newOverridesTestRouter(overridesService, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/overrides", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetOverride_Success(t *testing.T) {
	key := model.ItemKey{Category: "Clothes", Name: "Hat"}
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("Set", mock.Anything, key, model.BagCarryOn).Return(&repository.OverrideDocument{
		Key:      "Clothes__Hat",
		Category: "Clothes",
		Name:     "Hat",
		Bag:      model.BagCarryOn,
	}, nil)

	router := newOverridesTestRouter(overridesService, nil)

	body := `{"category": "Clothes", "name": "Hat", "bag": "carryOn"}`
	req := httptest.NewRequest(http.MethodPut, "/api/overrides", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data repository.OverrideDocument `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Clothes__Hat", envelope.Data.Key)
	overridesService.AssertExpectations(t)
}

func TestSetOverride_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "unknown bag",
			body: `{"category": "Clothes", "name": "Hat", "bag": "backpack"}`,
		},
		{
			name: "missing name",
			body: `{"category": "Clothes", "bag": "carryOn"}`,
		},
		{
			name: "malformed json",
			body: `{"category": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overridesService := new(mocks.MockOverridesService)
			router := newOverridesTestRouter(overridesService, nil)

			req := httptest.NewRequest(http.MethodPut, "/api/overrides", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			overridesService.AssertNotCalled(t, "Set")
		})
	}
}

func TestSetOverride_StoreUnavailable(t *testing.T) {
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	router := newOverridesTestRouter(overridesService, nil)

	body := `{"category": "Clothes", "name": "Hat", "bag": "carryOn"}`
	req := httptest.NewRequest(http.MethodPut, "/api/overrides", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSetOverride_InvalidatesPacklistCache(t *testing.T) {
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("GetAll", mock.Anything).Return(map[model.ItemKey]model.Bag{
		{Category: "Clothes", Name: "Socks"}: model.BagCarryOn,
	}, nil)
	overridesService.On("Set", mock.Anything, mock.Anything, mock.Anything).Return(&repository.OverrideDocument{}, nil)

	packlistHandler := NewHandler(service.NewPacklistService(), overridesService, WithOverridesCacheTTL(time.Minute))

	gin.SetMode(gin.TestMode)
	overridesHandler := NewOverridesHandler(overridesService, packlistHandler)
	router := gin.New()
	router.POST("/api/packlists/generate", packlistHandler.GeneratePacklist)
	router.PUT("/api/overrides", overridesHandler.SetOverride)

	// Prime the cache, write an override, then generate again.
	w := postJSON(router, "/api/packlists/generate", lisbonTripBody)
	require.Equal(t, http.StatusOK, w.Code)
	overridesService.AssertNumberOfCalls(t, "GetAll", 1)

	body := `{"category": "Clothes", "name": "Hat", "bag": "carryOn"}`
	req := httptest.NewRequest(http.MethodPut, "/api/overrides", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	w = postJSON(router, "/api/packlists/generate", lisbonTripBody)
	require.Equal(t, http.StatusOK, w.Code)
	overridesService.AssertNumberOfCalls(t, "GetAll", 2)
}

func TestDeleteOverride_Success(t *testing.T) {
	key := model.ItemKey{Category: "Clothes", Name: "Hat"}
	overridesService := new(mocks.MockOverridesService)
	overridesService.On("Delete", mock.Anything, key).Return(nil)

	router := newOverridesTestRouter(overridesService, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/overrides?category=Clothes&name=Hat", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "Clothes__Hat", envelope.Data["deleted"])
	overridesService.AssertExpectations(t)
}

func TestDeleteOverride_MissingIdentity(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "no parameters", query: ""},
		{name: "missing name", query: "?category=Clothes"},
		{name: "missing category", query: "?name=Hat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overridesService := new(mocks.MockOverridesService)
			router := newOverridesTestRouter(overridesService, nil)

			req := httptest.NewRequest(http.MethodDelete, "/api/overrides"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			overridesService.AssertNotCalled(t, "Delete")
		})
	}
}
