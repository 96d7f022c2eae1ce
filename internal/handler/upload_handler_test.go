package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unisched/campus-api/internal/service"
	appErrors "github.com/unisched/campus-api/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockUploadService struct {
	stored      *service.StoredImage
	err         error
	lastUpload  service.ImageUpload
	requestBase string
}

func (m *mockUploadService) Store(upload service.ImageUpload, requestBase string) (*service.StoredImage, error) {
	m.lastUpload = upload
	m.requestBase = requestBase
	if m.err != nil {
		return nil, m.err
	}
	return m.stored, nil
}

func newUploadRouter(svc *mockUploadService) *gin.Engine {
	r := gin.New()
	r.POST("/uploads", NewUploadHandler(svc).Upload)
	return r
}

func multipartImage(t *testing.T, field, filename, contentType string, body []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

func TestUploadSuccess(t *testing.T) {
	svc := &mockUploadService{stored: &service.StoredImage{
		Filename: "img_1_abcd1234.png",
		URL:      "http://campus.example/uploads/img_1_abcd1234.png",
	}}
	r := newUploadRouter(svc)

	body, contentType := multipartImage(t, "image", "avatar.png", "image/png", []byte("\x89PNG\r\n\x1a\npayload"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Host = "campus.example"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image uploaded", resp["message"])
	assert.Contains(t, resp["imageUrl"], "img_1_abcd1234.png")

	assert.Equal(t, "avatar.png", svc.lastUpload.Filename)
	assert.Equal(t, "image/png", svc.lastUpload.MimeType)
	assert.Equal(t, "http://campus.example", svc.requestBase)
}

func TestUploadMissingFilePart(t *testing.T) {
	r := newUploadRouter(&mockUploadService{})

	body, contentType := multipartImage(t, "wrongfield", "avatar.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "image file is required", resp["message"])
}

func TestUploadServiceRejection(t *testing.T) {
	svc := &mockUploadService{err: appErrors.Clone(appErrors.ErrUnsupportedFileType, "only jpeg, jpg, png and gif images are accepted")}
	r := newUploadRouter(svc)

	body, contentType := multipartImage(t, "image", "notes.txt", "text/plain", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only jpeg, jpg, png and gif images are accepted")
}

func TestUploadForwardedProtoInRequestBase(t *testing.T) {
	svc := &mockUploadService{stored: &service.StoredImage{URL: "u"}}
	r := newUploadRouter(svc)

	body, contentType := multipartImage(t, "image", "avatar.png", "image/png", []byte("data"))
	req := httptest.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Host = "campus.example"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(svc.requestBase, "https://"), svc.requestBase)
}
