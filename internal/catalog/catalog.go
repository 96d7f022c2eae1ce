// Package catalog holds the per-entity configuration that drives the generic
// listing and CRUD pipeline: storage schema, sort allowlists, searchable
// columns, filters, DTO projection and export columns.
package catalog

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/unisched/campus-api/internal/resource"
)

// Resource is a fully wired entity endpoint set.
type Resource interface {
	Register(rg *gin.RouterGroup, write ...gin.HandlerFunc)
}

// Options tunes catalog-wide behaviour.
type Options struct {
	// ExportsEnabled mounts the /export routes when true.
	ExportsEnabled bool
	// Metrics, when set, receives per-query timings from every repository.
	Metrics resource.QueryObserver
}

// Build wires every entity definition into a handler.
func Build(db *sqlx.DB, validate *validator.Validate, logger *zap.Logger, opts Options) []Resource {
	return []Resource{
		wire(db, Departments(), validate, logger, opts),
		wire(db, Buildings(), validate, logger, opts),
		wire(db, Courses(), validate, logger, opts),
		wire(db, Modules(), validate, logger, opts),
		wire(db, Staff(), validate, logger, opts),
		wire(db, Constraints(), validate, logger, opts),
	}
}

func wire[R any, D any](db *sqlx.DB, def resource.Definition[R, D], validate *validator.Validate, logger *zap.Logger, opts Options) Resource {
	if !opts.ExportsEnabled {
		def.ExportHeaders = nil
		def.ExportRow = nil
	}
	repo := resource.NewRepository[R](db, def.Schema)
	if opts.Metrics != nil {
		repo = repo.WithObserver(opts.Metrics)
	}
	svc := resource.NewService(repo, def.Query, def.Project, def.Singular, validate, logger)
	return resource.NewHandler(def, svc)
}
