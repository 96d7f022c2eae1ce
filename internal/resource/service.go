package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/unisched/campus-api/internal/query"
	appErrors "github.com/unisched/campus-api/pkg/errors"
)

type repository[R any] interface {
	List(ctx context.Context, spec query.Spec) ([]R, error)
	ListAll(ctx context.Context, spec query.Spec) ([]R, error)
	Count(ctx context.Context, search string, filters map[string]string) (int, error)
	FindByID(ctx context.Context, id int64) (*R, error)
	Create(ctx context.Context, payload any) (int64, error)
	Update(ctx context.Context, payload any) error
	Delete(ctx context.Context, id int64) error
}

// Service orchestrates the listing pipeline and CRUD lifecycle for one
// entity: query spec building, repository access, DTO projection and typed
// error mapping.
type Service[R any, D any] struct {
	repo      repository[R]
	builder   query.Builder
	project   func(R) D
	singular  string
	validator *validator.Validate
	logger    *zap.Logger
}

// NewService constructs a Service.
func NewService[R any, D any](repo repository[R], builder query.Builder, project func(R) D, singular string, validate *validator.Validate, logger *zap.Logger) *Service[R, D] {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service[R, D]{
		repo:      repo,
		builder:   builder,
		project:   project,
		singular:  singular,
		validator: validate,
		logger:    logger,
	}
}

// List validates the raw parameters, runs the listing and its count
// concurrently and assembles the page envelope.
func (s *Service[R, D]) List(ctx context.Context, params query.Params) (*Page[D], error) {
	spec, err := s.builder.Build(params)
	if err != nil {
		return nil, err
	}

	var (
		rows  []R
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var listErr error
		rows, listErr = s.repo.List(gctx, spec)
		return listErr
	})
	g.Go(func() error {
		var countErr error
		total, countErr = s.repo.Count(gctx, spec.Search, spec.Filters)
		return countErr
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("list failed", zap.String("resource", s.singular), zap.Error(err))
		return nil, appErrors.Internal(err, fmt.Sprintf("failed to list %s records", s.singular))
	}

	items := make([]D, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.project(row))
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + spec.PageSize - 1) / spec.PageSize
	}

	return &Page[D]{
		Items:       items,
		CurrentPage: spec.Page,
		TotalPages:  totalPages,
		TotalItems:  total,
		PageSize:    spec.PageSize,
	}, nil
}

// ListAll returns every projected row matching the parameters' predicate and
// ordering, ignoring pagination.
func (s *Service[R, D]) ListAll(ctx context.Context, params query.Params) ([]D, error) {
	spec, err := s.builder.Build(params)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListAll(ctx, spec)
	if err != nil {
		s.logger.Error("export listing failed", zap.String("resource", s.singular), zap.Error(err))
		return nil, appErrors.Internal(err, fmt.Sprintf("failed to export %s records", s.singular))
	}
	items := make([]D, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.project(row))
	}
	return items, nil
}

// Get returns the DTO for a single record.
func (s *Service[R, D]) Get(ctx context.Context, id int64) (*D, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapReadError(err, "load")
	}
	dto := s.project(*row)
	return &dto, nil
}

// Create validates the payload, inserts it and returns the projected record.
func (s *Service[R, D]) Create(ctx context.Context, payload any) (*D, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", s.singular))
	}
	id, err := s.repo.Create(ctx, payload)
	if err != nil {
		if IsConstraintViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConstraint, fmt.Sprintf("%s references a missing or conflicting record", s.singular))
		}
		s.logger.Error("create failed", zap.String("resource", s.singular), zap.Error(err))
		return nil, appErrors.Internal(err, fmt.Sprintf("failed to create %s", s.singular))
	}
	return s.Get(ctx, id)
}

// Update validates the payload and applies it. A missing id is a NotFound,
// never a silent no-op.
func (s *Service[R, D]) Update(ctx context.Context, payload Identified) (*D, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, fmt.Sprintf("invalid %s payload", s.singular))
	}
	if err := s.repo.Update(ctx, payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.singular))
		}
		if IsConstraintViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrConstraint, fmt.Sprintf("%s references a missing or conflicting record", s.singular))
		}
		s.logger.Error("update failed", zap.String("resource", s.singular), zap.Error(err))
		return nil, appErrors.Internal(err, fmt.Sprintf("failed to update %s", s.singular))
	}
	return s.Get(ctx, payload.ResourceID())
}

// Delete removes a record, reporting NotFound when the id does not exist so
// callers can distinguish "nothing to delete" from a successful delete.
func (s *Service[R, D]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.singular))
		}
		if IsConstraintViolation(err) {
			return appErrors.Clone(appErrors.ErrConstraint, fmt.Sprintf("%s is still referenced by other records", s.singular))
		}
		s.logger.Error("delete failed", zap.String("resource", s.singular), zap.Error(err))
		return appErrors.Internal(err, fmt.Sprintf("failed to delete %s", s.singular))
	}
	return nil
}

func (s *Service[R, D]) mapReadError(err error, verb string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("%s not found", s.singular))
	}
	s.logger.Error(verb+" failed", zap.String("resource", s.singular), zap.Error(err))
	return appErrors.Internal(err, fmt.Sprintf("failed to %s %s", verb, s.singular))
}
