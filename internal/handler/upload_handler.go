package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stagefolio/internal/service"
)

// UploadImage accepts a multipart image and answers with an inline data URI.
// The dashboard sends the part as "file"; "image" is accepted as well.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		file, err = c.FormFile("image")
	}
	if err != nil {
		respondError(c, http.StatusBadRequest, "no image file provided")
		return
	}

	if contentType := file.Header.Get("Content-Type"); contentType != "" && !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, "only image files are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read uploaded file")
		return
	}

	img, err := a.images.Store(file.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage):
			respondError(c, http.StatusBadRequest, "only image files are allowed")
		case errors.Is(err, service.ErrImageTooLarge):
			respondError(c, http.StatusBadRequest, "image exceeds the size limit")
		default:
			respondStoreError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url": service.DataURI(img),
		"filename":  img.Filename,
	})
}
