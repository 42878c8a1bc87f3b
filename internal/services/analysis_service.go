package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gridlens/gridlens/internal/aggregation"
	"github.com/gridlens/gridlens/internal/logging"
	"github.com/gridlens/gridlens/internal/pipeline"
	"github.com/gridlens/gridlens/internal/source"
)

// AnalysisState mirrors the parameter set a result was derived with, so
// export collaborators can annotate their output with the filters and
// analysis applied.
type AnalysisState struct {
	Variable string          `json:"variable"`
	Params   pipeline.Params `json:"params"`
	Timezone string          `json:"timezone"`
}

// AnalysisResponse is the composed result of one analysis run.
type AnalysisResponse struct {
	Variable source.VariableMeta       `json:"variable"`
	State    AnalysisState             `json:"state"`
	Result   *pipeline.ProcessedResult `json:"result"`
}

// AnalysisService owns one pipeline per variable selection, so each
// selection keeps its own memo slot and no state leaks across variables.
type AnalysisService struct {
	logger *logging.Logger
	src    source.Source
	loc    *time.Location

	maxPoints int

	mu       sync.Mutex
	sessions map[string]*pipeline.Pipeline
}

// NewAnalysisService creates a new AnalysisService. loc sets the calendar
// used for aggregation bucketing (UTC when nil); maxPoints caps uploaded
// series sizes (0 disables the cap).
func NewAnalysisService(logger *logging.Logger, src source.Source, loc *time.Location, maxPoints int) *AnalysisService {
	if loc == nil {
		loc = time.UTC
	}
	return &AnalysisService{
		logger:    logger,
		src:       src,
		loc:       loc,
		maxPoints: maxPoints,
		sessions:  make(map[string]*pipeline.Pipeline),
	}
}

// Analyze runs the pipeline for a variable with the given parameters.
func (s *AnalysisService) Analyze(ctx context.Context, name string, params pipeline.Params) (*AnalysisResponse, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	raw, meta, err := s.src.Get(ctx, name)
	if err != nil {
		if errors.Is(err, source.ErrVariableNotFound) {
			return nil, NewServiceError(CodeVariableNotFound, "unknown variable: "+name)
		}
		return nil, err
	}

	start := time.Now()
	result := s.session(name).Recompute(raw, params)
	s.logger.Debug("Analysis recomputed",
		"variable", name,
		"points_in", len(raw),
		"points_filtered", result.FilteredCount,
		"duration", time.Since(start),
	)

	return &AnalysisResponse{
		Variable: meta,
		State: AnalysisState{
			Variable: name,
			Params:   params,
			Timezone: s.loc.String(),
		},
		Result: result,
	}, nil
}

// session returns the pipeline owned by a variable selection, creating it on
// first use.
func (s *AnalysisService) session(name string) *pipeline.Pipeline {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.sessions[name]
	if !ok {
		p = pipeline.New(s.loc)
		s.sessions[name] = p
	}
	return p
}

// forget drops a variable's session so nothing outlives the selection.
func (s *AnalysisService) forget(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, name)
}

// validateParams rejects caller misuse before the pipeline runs, so the API
// reports a 4xx instead of silently omitting a stage.
func validateParams(params pipeline.Params) error {
	if params.Smoothing != nil {
		switch params.Smoothing.Method {
		case pipeline.SmoothingSMA:
			if params.Smoothing.Window <= 0 {
				return NewServiceErrorWithDetails(CodeInvalidParameter,
					"sma window must be positive",
					map[string]interface{}{"window": params.Smoothing.Window})
			}
		case pipeline.SmoothingEMA:
			if params.Smoothing.Alpha <= 0 || params.Smoothing.Alpha > 1 {
				return NewServiceErrorWithDetails(CodeInvalidParameter,
					"ema alpha must be in (0,1]",
					map[string]interface{}{"alpha": params.Smoothing.Alpha})
			}
		default:
			return NewServiceErrorWithDetails(CodeInvalidParameter,
				"unknown smoothing method",
				map[string]interface{}{"method": string(params.Smoothing.Method)})
		}
	}

	if params.Aggregation != nil {
		if _, err := aggregation.ParsePeriod(string(params.Aggregation.Period)); err != nil {
			return NewServiceError(CodeInvalidParameter, err.Error())
		}
		if _, err := aggregation.ParseReducer(string(params.Aggregation.Reducer)); err != nil {
			return NewServiceError(CodeInvalidParameter, err.Error())
		}
	}

	if params.Anomaly != nil && params.Anomaly.ThresholdSigma <= 0 {
		return NewServiceErrorWithDetails(CodeInvalidParameter,
			"anomaly threshold_sigma must be positive",
			map[string]interface{}{"threshold_sigma": params.Anomaly.ThresholdSigma})
	}

	return nil
}
