package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-admin-api/internal/domain"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog"
	"github.com/vfg2006/restaurant-admin-api/internal/usecases/catalog/mocks"
	"go.uber.org/mock/gomock"
)

func serveCategoryRoute(method, path string, handler http.Handler, body string) *httptest.ResponseRecorder {
	router := httprouter.New()
	router.Handler(method, "/v1/categories", handler)
	router.Handler(method, "/v1/categories/:id", handler)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))
	return recorder
}

func TestDeleteCategory_RequiresExplicitConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Sem confirm=true o serviço não é chamado
	service := mocks.NewMockCategoryManager(ctrl)

	recorder := serveCategoryRoute(http.MethodDelete, "/v1/categories/3", DeleteCategory(service), "")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_003")
}

func TestDeleteCategory_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCategoryManager(ctrl)
	service.EXPECT().Delete(gomock.Any(), 3).Return([]domain.Category{}, nil)

	recorder := serveCategoryRoute(http.MethodDelete, "/v1/categories/3?confirm=true", DeleteCategory(service), "")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateCategory_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCategoryManager(ctrl)
	service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, catalog.ErrNameRequired)

	recorder := serveCategoryRoute(http.MethodPost, "/v1/categories", CreateCategory(service), `{"name": ""}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_002")
}

func TestCreateCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCategoryManager(ctrl)
	service.EXPECT().
		Create(gomock.Any(), domain.CategoryInput{Name: "Bebidas"}).
		Return([]domain.Category{{ID: 1, Name: "Bebidas"}}, nil)

	recorder := serveCategoryRoute(http.MethodPost, "/v1/categories", CreateCategory(service), `{"name": "Bebidas"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Bebidas")
}

func TestUpdateCategory_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockCategoryManager(ctrl)

	recorder := serveCategoryRoute(http.MethodPatch, "/v1/categories/abc", UpdateCategory(service), `{"name": "X"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "VAL_001")
}
