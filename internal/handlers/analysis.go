package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gridlens/gridlens/internal/aggregation"
	"github.com/gridlens/gridlens/internal/models"
	"github.com/gridlens/gridlens/internal/pipeline"
	"github.com/gridlens/gridlens/internal/series"
)

// Analyze handles POST /v1/variables/:name/analyze
func (h *Handler) Analyze(c *fiber.Ctx) error {
	name := c.Params("name")

	var req models.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Failed to parse request body: "+err.Error())
	}

	resp, err := h.service.Analyze(c.UserContext(), name, toParams(req))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// toParams maps the request payload onto pipeline parameters. Validation
// stays in the service so every caller gets the same errors.
func toParams(req models.AnalyzeRequest) pipeline.Params {
	params := pipeline.Params{Trend: req.Trend}

	if req.DateRange != nil {
		params.DateRange = series.DateRange{
			Start: req.DateRange.Start,
			End:   req.DateRange.End,
		}
	}
	if req.ValueRange != nil {
		params.ValueRange = series.ValueRange{
			Min:             req.ValueRange.Min,
			Max:             req.ValueRange.Max,
			ExcludeOutliers: req.ValueRange.ExcludeOutliers,
		}
	}
	if req.Smoothing != nil {
		params.Smoothing = &pipeline.SmoothingSpec{
			Method: pipeline.SmoothingMethod(req.Smoothing.Method),
			Window: req.Smoothing.Window,
			Alpha:  req.Smoothing.Alpha,
		}
	}
	if req.Aggregation != nil {
		params.Aggregation = &pipeline.AggregationSpec{
			Period:  aggregation.Period(req.Aggregation.Period),
			Reducer: aggregation.Reducer(req.Aggregation.Reducer),
		}
	}
	if req.Anomaly != nil {
		params.Anomaly = &pipeline.AnomalySpec{
			ThresholdSigma: req.Anomaly.ThresholdSigma,
		}
	}
	return params
}
