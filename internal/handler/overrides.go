package handler

import (
	"net/http"
	"strconv"

	"github.com/TuringTechX/openfoodnetwork/internal/apierror"
	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type OverridesHandler struct{ svc service.OverrideService }

func NewOverridesHandler(svc service.OverrideService) *OverridesHandler {
	return &OverridesHandler{svc: svc}
}

// Upsert serves PUT /v1/hubs/:id/overrides.
func (h *OverridesHandler) Upsert(c *gin.Context) {
	hubID, ok := hubIDParam(c)
	if !ok {
		return
	}
	var req dto.UpsertOverrideRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Upsert(c.Request.Context(), hubID, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete serves DELETE /v1/hubs/:id/overrides/:variant_id.
func (h *OverridesHandler) Delete(c *gin.Context) {
	hubID, ok := hubIDParam(c)
	if !ok {
		return
	}
	variantID, err := strconv.ParseInt(c.Param("variant_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid variant id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), hubID, variantID); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// List serves GET /v1/hubs/:id/overrides.
func (h *OverridesHandler) List(c *gin.Context) {
	hubID, ok := hubIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), hubID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list overrides"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func hubIDParam(c *gin.Context) (int64, bool) {
	hubID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid hub id"))
		return 0, false
	}
	return hubID, true
}
