package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/naming-go/response"
	"github.com/linskybing/naming-go/storage"
)

// UploadAttachment stores a file-field attachment in object storage and
// returns the key the submitter uses as the field value.
func UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	defer file.Close()

	key, err := storage.UploadAttachment(
		c.Request.Context(),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{ObjectKey: key})
}
