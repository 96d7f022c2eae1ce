package service

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/unisched/campus-api/pkg/errors"
)

type uploadStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// ImageUpload carries upload metadata and a rewindable content reader.
type ImageUpload struct {
	Filename string
	Size     int64
	MimeType string
	Content  io.ReadSeeker
}

// StoredImage describes a persisted, published asset.
type StoredImage struct {
	Filename string
	URL      string
}

// UploadServiceConfig holds validation and publishing parameters.
type UploadServiceConfig struct {
	MaxFileSize int64
	URLPrefix   string
	// PublicBaseURL overrides the request host when building the public
	// URL, e.g. behind a CDN. Empty means derive from the request.
	PublicBaseURL string
}

// Extensions and MIME types accepted for profile images.
var (
	imageExtensions = map[string]struct{}{
		".jpeg": {},
		".jpg":  {},
		".png":  {},
		".gif":  {},
	}
	imageMimeTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/png":  {},
		"image/gif":  {},
	}
)

// UploadService validates, stores, names and publishes profile images.
type UploadService struct {
	storage uploadStorage
	logger  *zap.Logger
	cfg     UploadServiceConfig
}

// NewUploadService constructs the service with defaults.
func NewUploadService(storage uploadStorage, logger *zap.Logger, cfg UploadServiceConfig) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = 5 * 1024 * 1024
	}
	if cfg.URLPrefix == "" {
		cfg.URLPrefix = "/uploads"
	}
	return &UploadService{storage: storage, logger: logger, cfg: cfg}
}

// Store runs the upload pipeline: validate size, extension, declared MIME
// type and sniffed content, then persist under a collision-resistant name
// and return the public URL. requestBase is the scheme://host serving the
// request, used when no public base URL is configured.
func (s *UploadService) Store(upload ImageUpload, requestBase string) (*StoredImage, error) {
	if upload.Content == nil || upload.Size <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "image file is required")
	}
	if upload.Size > s.cfg.MaxFileSize {
		return nil, appErrors.Clone(appErrors.ErrFileTooLarge, fmt.Sprintf("image exceeds %d bytes limit", s.cfg.MaxFileSize))
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if _, ok := imageExtensions[ext]; !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFileType, "only jpeg, jpg, png and gif images are accepted")
	}
	if declared := normalizeMime(upload.MimeType); declared != "" {
		if _, ok := imageMimeTypes[declared]; !ok {
			return nil, appErrors.Clone(appErrors.ErrUnsupportedFileType, "declared content type is not an allowed image type")
		}
	}

	// The declared type is client-controlled; the sniffed bytes decide.
	detected, err := s.sniff(upload.Content)
	if err != nil {
		return nil, err
	}
	if _, ok := imageMimeTypes[detected]; !ok {
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFileType, "file content does not match an allowed image type")
	}

	name := fmt.Sprintf("img_%d_%s%s", time.Now().UnixNano(), shortSuffix(), ext)
	stored, err := s.storage.SaveStream(name, upload.Content)
	if err != nil {
		s.logger.Error("upload store failed", zap.String("filename", name), zap.Error(err))
		return nil, appErrors.Internal(err, "failed to store image")
	}

	return &StoredImage{Filename: stored, URL: s.publicURL(stored, requestBase)}, nil
}

func (s *UploadService) sniff(content io.ReadSeeker) (string, error) {
	header := make([]byte, 512)
	n, err := content.Read(header)
	if err != nil && err != io.EOF {
		return "", appErrors.Internal(err, "failed to inspect image")
	}
	if _, err := content.Seek(0, io.SeekStart); err != nil {
		return "", appErrors.Internal(err, "failed to reset upload stream")
	}
	if n == 0 {
		return "", appErrors.Clone(appErrors.ErrValidation, "empty file")
	}
	return normalizeMime(http.DetectContentType(header[:n])), nil
}

func (s *UploadService) publicURL(filename, requestBase string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		base = requestBase
	}
	base = strings.TrimRight(base, "/")
	prefix := "/" + strings.Trim(s.cfg.URLPrefix, "/")
	return base + prefix + "/" + filename
}

func normalizeMime(raw string) string {
	mime := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = strings.TrimSpace(mime[:idx])
	}
	return mime
}

func shortSuffix() string {
	id := uuid.NewString()
	return strings.ReplaceAll(id, "-", "")[:8]
}
