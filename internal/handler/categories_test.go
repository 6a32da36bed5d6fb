package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
)

func TestHandleListCategories(t *testing.T) {
	svc := new(MockInventoryService)
	svc.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: "1", Name: "Electronics", ItemCount: 2},
		{ID: "2", Name: "Furniture", ItemCount: 0},
	})

	rec := serve(t, http.MethodGet, "/categories", HandleListCategories(svc), "/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`[{"id":"1","name":"Electronics","item_count":2},{"id":"2","name":"Furniture","item_count":0}]`,
		rec.Body.String())
}

func TestHandleGetCategory(t *testing.T) {
	svc := new(MockInventoryService)
	svc.On("GetCategory", mock.Anything, "9").Return(domain.Category{}, domain.ErrCategoryNotFound)

	rec := serve(t, http.MethodGet, "/categories/{id}", HandleGetCategory(svc), "/categories/9", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrMsgCategoryNotFoundError, decodeBody[ErrorResponse](t, rec).Error)
}

func TestHandleAddCategory(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockInventoryService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			body: CategoryRequest{Name: "Garden"},
			setupMock: func(m *MockInventoryService) {
				m.On("AddCategory", mock.Anything, "Garden").Return(domain.Category{ID: "11", Name: "Garden"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"name":"Garden"`,
		},
		{
			name: "Duplicate",
			body: CategoryRequest{Name: "art"},
			setupMock: func(m *MockInventoryService) {
				m.On("AddCategory", mock.Anything, "art").Return(domain.Category{}, fmt.Errorf("%w: art", domain.ErrCategoryExists))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgCategoryExistsError,
		},
		{
			name:           "Missing name",
			body:           CategoryRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"name":"This field is required"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockInventoryService)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rec := serve(t, http.MethodPost, "/categories", HandleAddCategory(svc), "/categories", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRenameCategory(t *testing.T) {
	InitValidator()

	svc := new(MockInventoryService)
	svc.On("RenameCategory", mock.Anything, "1", "Gadgets").Return(inventory.RenameResult{
		Category: domain.Category{ID: "1", Name: "Gadgets"},
		OldName:  "Electronics",
		Orphaned: 3,
	}, nil)
	svc.On("RenameCategory", mock.Anything, "2", "Gadgets").Return(inventory.RenameResult{}, domain.ErrCategoryExists)

	rec := serve(t, http.MethodPut, "/categories/{id}", HandleRenameCategory(svc), "/categories/1", CategoryRequest{Name: "Gadgets"})
	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[CategoryRenameResponse](t, rec)
	assert.Equal(t, "Gadgets", resp.Category.Name)
	assert.Equal(t, "Electronics", resp.OldName)
	assert.Equal(t, 3, resp.Orphaned)

	rec = serve(t, http.MethodPut, "/categories/{id}", HandleRenameCategory(svc), "/categories/2", CategoryRequest{Name: "Gadgets"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleDeleteCategory(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"Success", nil, http.StatusOK},
		{"In use", fmt.Errorf("%w: Electronics has 2 items", domain.ErrCategoryInUse), http.StatusConflict},
		{"Not found", domain.ErrCategoryNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockInventoryService)
			svc.On("DeleteCategory", mock.Anything, "1").Return(domain.Category{ID: "1", Name: "Electronics"}, tt.err)

			rec := serve(t, http.MethodDelete, "/categories/{id}", HandleDeleteCategory(svc), "/categories/1", nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
