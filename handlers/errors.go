package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/apperrors"
	"github.com/linskybing/naming-go/response"
)

// writeError maps the error taxonomy onto HTTP statuses in one place so
// every handler reports failures the same way.
func writeError(c *gin.Context, err error) {
	var validation *apperrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: validation.Error(), Details: validation.Fields})
		return
	}

	var invalidTransition *apperrors.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: invalidTransition.Error(), Details: invalidTransition})
		return
	}

	var alreadyClaimed *apperrors.AlreadyClaimedError
	if errors.As(err, &alreadyClaimed) {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: alreadyClaimed.Error(), Details: alreadyClaimed})
		return
	}

	var notFound *apperrors.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: notFound.Error()})
		return
	}

	var conflict *apperrors.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: conflict.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
}
