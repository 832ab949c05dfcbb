package vitals

import (
	"strings"

	"github.com/google/uuid"

	"github.com/summitair/website/pkg/validator"
)

// Metric names reported by the page, matching the web-vitals library.
const (
	MetricCLS  = "CLS"
	MetricLCP  = "LCP"
	MetricINP  = "INP"
	MetricFCP  = "FCP"
	MetricTTFB = "TTFB"
)

// Ratings per the Web Vitals thresholds.
const (
	RatingGood             = "good"
	RatingNeedsImprovement = "needs-improvement"
	RatingPoor             = "poor"
)

var (
	knownMetrics = []string{MetricCLS, MetricLCP, MetricINP, MetricFCP, MetricTTFB}
	knownRatings = []string{RatingGood, RatingNeedsImprovement, RatingPoor}
)

// Beacon is one reported measurement. Value is milliseconds for timing
// metrics and a unitless score for CLS. NavigationID groups metrics from the
// same page view.
type Beacon struct {
	Metric       string  `json:"metric"`
	Value        float64 `json:"value"`
	Rating       string  `json:"rating"`
	Page         string  `json:"page"`
	NavigationID string  `json:"navigation_id,omitempty"`
}

// Validate normalizes and checks the beacon in place. The metric name is
// uppercased and the rating lowercased before the closed-set checks.
func (b *Beacon) Validate() error {
	b.Metric = strings.ToUpper(strings.TrimSpace(b.Metric))
	b.Rating = strings.ToLower(strings.TrimSpace(b.Rating))
	b.Page = strings.TrimSpace(b.Page)

	errs := make(validator.ValidationErrors, 0, 4)

	if verr := validator.First(
		validator.Required("metric", b.Metric),
		validator.OneOf("metric", b.Metric, knownMetrics),
	); verr != nil {
		errs.Add(*verr)
	}

	if verr := validator.First(
		validator.Required("rating", b.Rating),
		validator.OneOf("rating", b.Rating, knownRatings),
	); verr != nil {
		errs.Add(*verr)
	}

	if b.Value < 0 {
		errs.Add(validator.ValidationError{Field: "value", Message: "value must not be negative"})
	}

	if b.Page == "" || !strings.HasPrefix(b.Page, "/") {
		errs.Add(validator.ValidationError{Field: "page", Message: "page must be an absolute path"})
	}

	if b.NavigationID != "" {
		if _, err := uuid.Parse(b.NavigationID); err != nil {
			errs.Add(validator.ValidationError{Field: "navigation_id", Message: "navigation_id must be a UUID"})
		}
	}

	if !errs.IsEmpty() {
		return errs
	}
	return nil
}
