package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/response"
	"github.com/linskybing/naming-go/services"
)

type ApprovedNameHandler struct {
	service *services.ApprovedNameService
}

func NewApprovedNameHandler(service *services.ApprovedNameService) *ApprovedNameHandler {
	return &ApprovedNameHandler{service: service}
}

// SearchApprovedNames godoc
// @Summary      Search the approved-name directory
// @Description  Multi-keyword AND search over name/description/service line/contact, with exact-match facet filters. Results are capped at 100.
// @Tags         approved-names
// @Security     BearerAuth
// @Produce      json
// @Param        keyword      query string false "Whitespace-separated keywords, all must match"
// @Param        service_line query string false "Exact service line"
// @Param        ipr          query string false "Exact IPR"
// @Param        category     query string false "Exact category"
// @Param        class        query string false "Exact class"
// @Success      200 {object} response.SuccessResponse
// @Router       /approved-names [get]
func (h *ApprovedNameHandler) SearchApprovedNames(c *gin.Context) {
	var input dto.ApprovedSearchDTO
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	records, err := h.service.Search(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: records})
}

func (h *ApprovedNameHandler) ListFacetValues(c *gin.Context) {
	values, err := h.service.FacetValues(c.Param("facet"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: values})
}
