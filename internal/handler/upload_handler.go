package handler

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unisched/campus-api/internal/service"
	appErrors "github.com/unisched/campus-api/pkg/errors"
)

type uploadService interface {
	Store(upload service.ImageUpload, requestBase string) (*service.StoredImage, error)
}

// UploadHandler exposes the profile image upload endpoint.
type UploadHandler struct {
	uploads uploadService
}

// NewUploadHandler constructs UploadHandler.
func NewUploadHandler(uploads uploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload godoc
// @Summary Upload a profile image
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image (jpeg, jpg, png, gif)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.fail(c, appErrors.Clone(appErrors.ErrValidation, "image file is required"))
		return
	}
	src, err := fileHeader.Open()
	if err != nil {
		h.fail(c, appErrors.Internal(err, "failed to open uploaded file"))
		return
	}
	defer src.Close() //nolint:errcheck

	reader, ok := src.(io.ReadSeeker)
	if !ok {
		buf, readErr := io.ReadAll(src)
		if readErr != nil {
			h.fail(c, appErrors.Internal(readErr, "failed to buffer uploaded file"))
			return
		}
		reader = bytes.NewReader(buf)
	}

	stored, err := h.uploads.Store(service.ImageUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  reader,
	}, requestBase(c))
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "image uploaded",
		"imageUrl": stored.URL,
	})
}

// fail writes the upload contract's flat error body.
func (h *UploadHandler) fail(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"message": appErr.Message})
}

func requestBase(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + c.Request.Host
}
