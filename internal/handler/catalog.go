package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/TuringTechX/openfoodnetwork/internal/apierror"
	"github.com/TuringTechX/openfoodnetwork/internal/dto"
	"github.com/TuringTechX/openfoodnetwork/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Resolve serves GET /v1/hubs/:id/catalog.
// A missing or unknown hub/cycle is a 404 ("no products available"); a
// legitimately empty catalog is a 200 with an empty product list.
func (h *CatalogHandler) Resolve(c *gin.Context) {
	hubID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid hub id"))
		return
	}

	var q dto.CatalogQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	page, err := h.svc.Resolve(c.Request.Context(), hubID, q)
	if err != nil {
		if errors.Is(err, service.ErrNoProductsAvailable) {
			c.JSON(http.StatusNotFound, apierror.New("no products available"))
			return
		}
		c.Error(err) //nolint:errcheck // handled by ErrorHandler middleware
		return
	}
	c.JSON(http.StatusOK, page)
}
