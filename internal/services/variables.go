package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridlens/gridlens/internal/series"
	"github.com/gridlens/gridlens/internal/source"
)

// Upload stores a named series. The series is sorted by time before storage
// so every consumer sees a time-ordered snapshot.
func (s *AnalysisService) Upload(ctx context.Context, name, units string, data series.Series, replace bool) (source.VariableMeta, error) {
	if name == "" {
		return source.VariableMeta{}, NewServiceError(CodeInvalidParameter, "variable name is required")
	}
	if s.maxPoints > 0 && len(data) > s.maxPoints {
		return source.VariableMeta{}, NewServiceErrorWithDetails(CodeSeriesTooLarge,
			fmt.Sprintf("series exceeds the %d point limit", s.maxPoints),
			map[string]interface{}{"points": len(data), "max_points": s.maxPoints})
	}

	meta, err := s.src.Put(ctx, name, units, data.SortedByTime(), replace)
	if err != nil {
		if errors.Is(err, source.ErrVariableExists) {
			return source.VariableMeta{}, NewServiceError(CodeVariableExists, "variable already exists: "+name)
		}
		return source.VariableMeta{}, err
	}

	// A replaced series invalidates any memoized result for the name.
	if replace {
		s.forget(name)
	}

	s.logger.Info("Variable stored",
		"variable", name,
		"points", meta.PointCount,
		"missing", meta.MissingCount,
	)
	return meta, nil
}

// ListVariables returns metadata for every stored variable.
func (s *AnalysisService) ListVariables(ctx context.Context) ([]source.VariableMeta, error) {
	return s.src.List(ctx)
}

// GetVariable returns a variable's series and metadata.
func (s *AnalysisService) GetVariable(ctx context.Context, name string) (series.Series, source.VariableMeta, error) {
	data, meta, err := s.src.Get(ctx, name)
	if err != nil {
		if errors.Is(err, source.ErrVariableNotFound) {
			return nil, source.VariableMeta{}, NewServiceError(CodeVariableNotFound, "unknown variable: "+name)
		}
		return nil, source.VariableMeta{}, err
	}
	return data, meta, nil
}

// DeleteVariable removes a variable and its analysis session.
func (s *AnalysisService) DeleteVariable(ctx context.Context, name string) error {
	if err := s.src.Delete(ctx, name); err != nil {
		if errors.Is(err, source.ErrVariableNotFound) {
			return NewServiceError(CodeVariableNotFound, "unknown variable: "+name)
		}
		return err
	}
	s.forget(name)
	s.logger.Info("Variable deleted", "variable", name)
	return nil
}
