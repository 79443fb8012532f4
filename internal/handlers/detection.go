package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/bloomly/internal/backend"
	"github.com/nfrund/bloomly/internal/domain"
	"github.com/nfrund/bloomly/internal/form"
	"github.com/nfrund/bloomly/internal/middleware"
	"github.com/nfrund/bloomly/internal/nav"
	"github.com/nfrund/bloomly/internal/pubsub"
	"github.com/nfrund/bloomly/internal/view"
	"github.com/nfrund/bloomly/web/src/templates/pages"
)

// Predict handles POST /detection/predict. The gate is evaluated again, so
// a session that ended since the form was shown lands on the login view.
func (h *AppHandler) Predict(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	d := h.decide(c, nav.Detection)
	if d.View != nav.Detection {
		return h.render(c, d, h.body(c, d), view.FlashData{})
	}

	var a domain.Assessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid assessment request")
	}

	props := pages.DetectionProps{Form: a}
	if err := c.Validate(&a); err != nil {
		props.Invalid = domain.FieldErrors(err)
		return h.render(c, d, pages.Detection(props), view.FlashData{})
	}

	var sub form.Submission
	err := sub.Run(ctx, func(ctx context.Context) error {
		result, err := h.backend.Predict(ctx, a)
		props.Result = result
		return err
	})
	props.Phase = sub.Phase()

	if err != nil {
		logger.Warn("Prediction failed", "error", err)
		props.Error = backend.PredictMessage(err)
		props.Result = nil
	} else {
		publish(c, h.publisher, pubsub.AssessmentCompleted, pubsub.AssessmentPayload{
			Risk:       props.Result.Risk,
			Confidence: props.Result.Confidence,
		})
	}

	return h.render(c, d, pages.Detection(props), view.FlashData{})
}

// ResetDetection handles POST /detection/reset ("New Test").
func (h *AppHandler) ResetDetection(c echo.Context) error {
	d := h.decide(c, nav.Detection)
	return h.render(c, d, h.body(c, d), view.FlashData{})
}
