package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/dto"
	"github.com/linskybing/naming-go/response"
	"github.com/linskybing/naming-go/services"
	"github.com/linskybing/naming-go/utils"
)

type FormConfigHandler struct {
	service *services.FormConfigService
}

func NewFormConfigHandler(service *services.FormConfigService) *FormConfigHandler {
	return &FormConfigHandler{service: service}
}

// CreateFormConfiguration godoc
// @Summary      Create a form configuration
// @Description  Create an intake form definition. Field names must be unique identifiers without whitespace; select/radio fields declare their options. Pass activate=true to make it the active configuration in the same call.
// @Tags         form-configurations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        config body dto.CreateFormConfigurationDTO true "Configuration definition"
// @Success      201 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse "Invalid field definitions"
// @Router       /form-configurations [post]
func (h *FormConfigHandler) CreateFormConfiguration(c *gin.Context) {
	var input dto.CreateFormConfigurationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	config, err := h.service.Create(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.SuccessResponse{Data: config})
}

func (h *FormConfigHandler) ListFormConfigurations(c *gin.Context) {
	configs, err := h.service.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: configs})
}

// GetActiveFormConfiguration returns the configuration new submissions
// use. 204 when none is active.
func (h *FormConfigHandler) GetActiveFormConfiguration(c *gin.Context) {
	config, err := h.service.GetActive()
	if err != nil {
		writeError(c, err)
		return
	}
	if config == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: config})
}

func (h *FormConfigHandler) GetFormConfiguration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	config, err := h.service.GetByID(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: config})
}

func (h *FormConfigHandler) UpdateFormConfiguration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	var input dto.UpdateFormConfigurationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	config, err := h.service.Update(id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessResponse{Data: config})
}

// ActivateFormConfiguration godoc
// @Summary      Activate a form configuration
// @Description  Make the target the single active configuration. Every other configuration is deactivated in the same operation.
// @Tags         form-configurations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Configuration ID"
// @Success      200 {object} response.MessageResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /form-configurations/{id}/activate [put]
func (h *FormConfigHandler) ActivateFormConfiguration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Activate(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "configuration activated"})
}

func (h *FormConfigHandler) DeleteFormConfiguration(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "configuration deleted"})
}
