package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"billforge/internal/domain"
	"billforge/internal/handler"
	"billforge/mocks"
)

func profileRouter(svc *mocks.MockProfileService) *gin.Engine {
	h := handler.NewProfileHandler(svc)
	r := gin.New()
	r.POST("/profiles", h.Create)
	r.GET("/profiles", h.List)
	r.GET("/profiles/:id", h.GetByID)
	r.PUT("/profiles/:id", h.Update)
	r.DELETE("/profiles/:id", h.Delete)
	return r
}

const profileBody = `{
	"name": "wood-works",
	"company": {"name": "Sri Lakshmi Wood Works", "gstin": "37ABCDE1234F1Z5", "state_code": "37"},
	"default_terms": "Payment due in 30 days"
}`

func TestProfileHandler_Create_Success(t *testing.T) {
	svc := new(mocks.MockProfileService)
	svc.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Profile{ID: uuid.New(), Name: "wood-works"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(profileBody))
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "wood-works")
}

func TestProfileHandler_Create_DuplicateName(t *testing.T) {
	svc := new(mocks.MockProfileService)
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateProfileName)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/profiles", strings.NewReader(profileBody))
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "DUPLICATE_PROFILE_NAME")
}

func TestProfileHandler_GetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockProfileService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/abc", nil)
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProfileHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockProfileService)
	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles/"+id.String(), nil)
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestProfileHandler_List_Paginates(t *testing.T) {
	svc := new(mocks.MockProfileService)
	svc.On("List", mock.Anything, 10, 5).
		Return([]domain.Profile{{Name: "wood-works"}}, 12, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles?offset=10&limit=5", nil)
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":12`)
	svc.AssertExpectations(t)
}

func TestProfileHandler_Update_Success(t *testing.T) {
	svc := new(mocks.MockProfileService)
	id := uuid.New()
	svc.On("Update", mock.Anything, id, mock.Anything).
		Return(&domain.Profile{ID: id, Name: "renamed"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/profiles/"+id.String(), strings.NewReader(`{"name": "renamed"}`))
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renamed")
}

func TestProfileHandler_Delete_Success(t *testing.T) {
	svc := new(mocks.MockProfileService)
	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/profiles/"+id.String(), nil)
	profileRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "profile deleted")
	svc.AssertExpectations(t)
}
