package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billforge/internal/service"
)

// ProfileHandler handles company profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Create handles POST /api/v1/profiles
// @Summary Create a company profile
// @Description Save a reusable seller identity and default terms
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body service.CreateProfileInput true "Profile details"
// @Success 201 {object} Response{data=domain.Profile} "Profile created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Profile name already exists"
// @Router /profiles [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var input service.CreateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.profileService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, profile)
}

// GetByID handles GET /api/v1/profiles/:id
// @Summary Get profile by ID
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=domain.Profile} "Profile details"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// List handles GET /api/v1/profiles
// @Summary List company profiles
// @Tags profiles
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Profile,meta=PagMeta} "List of profiles"
// @Router /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	profiles, total, err := h.profileService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, profiles, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/profiles/:id
// @Summary Update a company profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Param request body service.UpdateProfileInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Profile} "Updated profile"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Failure 409 {object} ErrorResponseBody "Profile name already exists"
// @Router /profiles/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, profile)
}

// Delete handles DELETE /api/v1/profiles/:id
// @Summary Delete a company profile
// @Tags profiles
// @Produce json
// @Param id path string true "Profile ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Profile deleted"
// @Failure 404 {object} ErrorResponseBody "Profile not found"
// @Router /profiles/{id} [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid profile ID")
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "profile deleted"})
}
