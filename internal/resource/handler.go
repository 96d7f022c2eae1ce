package resource

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/unisched/campus-api/internal/query"
	appErrors "github.com/unisched/campus-api/pkg/errors"
	"github.com/unisched/campus-api/pkg/export"
	"github.com/unisched/campus-api/pkg/response"
)

// Definition is the per-entity configuration driving the generic pipeline:
// storage schema, listing rules, DTO projection, payload factories and
// export columns. One Definition replaces a hand-written controller.
type Definition[R any, D any] struct {
	// Name is the plural path segment, e.g. "courses".
	Name string
	// Singular labels the entity in error messages.
	Singular string
	Schema   Schema
	Query    query.Builder
	Project  func(R) D
	// FilterParams lists the query parameters recognised as filters.
	// Absent parameters are omitted from the filter map, not set empty.
	FilterParams []string
	NewCreate    func() any
	NewUpdate    func() Identified
	// Export columns; leave empty to disable exports for the entity.
	ExportHeaders []string
	ExportRow     func(D) []string
}

// Handler serves the uniform REST surface for one entity definition.
type Handler[R any, D any] struct {
	def Definition[R, D]
	svc *Service[R, D]
	csv *export.CSVExporter
	pdf *export.PDFExporter
}

// NewHandler constructs a Handler around the definition and its service.
func NewHandler[R any, D any](def Definition[R, D], svc *Service[R, D]) *Handler[R, D] {
	return &Handler[R, D]{
		def: def,
		svc: svc,
		csv: export.NewCSVExporter(),
		pdf: export.NewPDFExporter(),
	}
}

// Register mounts the entity routes on the group. The write middleware, when
// provided, gates mutating endpoints and exports.
func (h *Handler[R, D]) Register(rg *gin.RouterGroup, write ...gin.HandlerFunc) {
	grp := rg.Group("/" + h.def.Name)
	grp.GET("", h.List)
	grp.GET("/:id", h.Get)

	mutations := grp.Group("", write...)
	mutations.POST("", h.Create)
	mutations.PUT("/:id", h.Update)
	mutations.DELETE("/:id", h.Delete)
	if len(h.def.ExportHeaders) > 0 {
		mutations.GET("/export", h.Export)
	}
}

// List serves the paginated, searchable, sortable listing.
func (h *Handler[R, D]) List(c *gin.Context) {
	page, err := h.svc.List(c.Request.Context(), h.params(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page)
}

// Get serves a single record by id.
func (h *Handler[R, D]) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	dto, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto)
}

// Create inserts a new record from the JSON payload.
func (h *Handler[R, D]) Create(c *gin.Context) {
	payload := h.def.NewCreate()
	if err := c.ShouldBindJSON(payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", h.def.Singular)))
		return
	}
	dto, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto)
}

// Update applies the JSON payload to an existing record.
func (h *Handler[R, D]) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	payload := h.def.NewUpdate()
	if err := c.ShouldBindJSON(payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", h.def.Singular)))
		return
	}
	payload.SetResourceID(id)
	dto, err := h.svc.Update(c.Request.Context(), payload)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto)
}

// Delete removes a record by id.
func (h *Handler[R, D]) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Export renders the full filtered listing as CSV or PDF.
func (h *Handler[R, D]) Export(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context(), h.params(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	dataset := export.Dataset{Headers: h.def.ExportHeaders}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, h.def.ExportRow(item))
	}

	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	switch format {
	case "csv":
		body, renderErr := h.csv.Render(dataset)
		if renderErr != nil {
			response.Error(c, appErrors.Internal(renderErr, "failed to render export"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.def.Name+".csv"))
		c.Data(http.StatusOK, "text/csv", body)
	case "pdf":
		body, renderErr := h.pdf.Render(dataset, h.def.Name)
		if renderErr != nil {
			response.Error(c, appErrors.Internal(renderErr, "failed to render export"))
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.def.Name+".pdf"))
		c.Data(http.StatusOK, "application/pdf", body)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}

func (h *Handler[R, D]) params(c *gin.Context) query.Params {
	params := query.Params{
		Page:       c.Query("page"),
		PageSize:   c.Query("pageSize"),
		Search:     c.Query("search"),
		SortColumn: c.Query("sortColumn"),
		SortOrder:  c.Query("sortOrder"),
	}
	for _, name := range h.def.FilterParams {
		if value, exists := c.GetQuery(name); exists && value != "" {
			if params.Filters == nil {
				params.Filters = make(map[string]string, len(h.def.FilterParams))
			}
			params.Filters[name] = value
		}
	}
	return params
}

func (h *Handler[R, D]) pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "id must be a positive integer"))
		return 0, false
	}
	return id, true
}
