package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/chynybekuuludastan/creator_toolkit/internal/api/middleware"
	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
	"github.com/chynybekuuludastan/creator_toolkit/internal/metrics"
	"github.com/chynybekuuludastan/creator_toolkit/internal/models"
	"github.com/chynybekuuludastan/creator_toolkit/internal/repository"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/generator"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/session"
	"github.com/chynybekuuludastan/creator_toolkit/internal/service/usage"
	"github.com/chynybekuuludastan/creator_toolkit/internal/validator"
)

// GeneratorHandler serves the title, description and SEO generators
type GeneratorHandler struct {
	Service   *generator.Service
	Sessions  *session.Registry
	Usage     *usage.Tracker
	Events    repository.EventRepository
	Validator *validator.Validator
}

// NewGeneratorHandler creates a new generator handler. repoFactory may be
// nil when no database is configured; events are then not recorded.
func NewGeneratorHandler(
	svc *generator.Service,
	sessions *session.Registry,
	tracker *usage.Tracker,
	repoFactory *repository.Factory,
) *GeneratorHandler {
	h := &GeneratorHandler{
		Service:   svc,
		Sessions:  sessions,
		Usage:     tracker,
		Validator: validator.NewValidator(),
	}
	if repoFactory != nil {
		h.Events = repoFactory.EventRepository
	}
	return h
}

// generation describes one generator call for serve
type generation struct {
	kind    generator.Kind
	blank   bool
	options map[string]interface{}
	run     func(ctx context.Context) (interface{}, error)
}

// @Summary Generate video titles
// @Description Generate ten title suggestions for a topic. Category and tone are echoed back.
// @Tags generators
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Param request body generator.TitleRequest true "Title request"
// @Success 200 {object} handlers.SuccessResponse{data=generator.TitleResult}
// @Success 204 "Blank topic, nothing generated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid option or input over its maxLength"
// @Failure 409 {object} handlers.ErrorResponse "Generation already in progress"
// @Router /titles [post]
func (h *GeneratorHandler) GenerateTitles(c *fiber.Ctx) error {
	req := new(generator.TitleRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error(), nil)
	}
	if err := h.Validator.ValidateTitleRequest(req); err != nil {
		return badRequest(c, "Validation failed", validator.FieldErrors(err))
	}

	return h.serve(c, generation{
		kind:  generator.KindTitles,
		blank: generator.IsBlank(req.Topic),
		options: map[string]interface{}{
			"category":     generator.NormalizeCategory(req.Category),
			"tone":         generator.NormalizeTone(req.Tone),
			"topic_length": generator.CharacterCount(req.Topic),
		},
		run: func(ctx context.Context) (interface{}, error) {
			result, err := h.Service.GenerateTitles(ctx, *req)
			if result == nil {
				return nil, err
			}
			return result, err
		},
	})
}

// @Summary Generate a video description
// @Description Build a structured description from a title, key points and a call to action
// @Tags generators
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Param request body generator.DescriptionRequest true "Description request"
// @Success 200 {object} handlers.SuccessResponse{data=generator.DescriptionResult}
// @Success 204 "Blank title, nothing generated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid option or input over its maxLength"
// @Failure 409 {object} handlers.ErrorResponse "Generation already in progress"
// @Router /descriptions [post]
func (h *GeneratorHandler) GenerateDescription(c *fiber.Ctx) error {
	req := new(generator.DescriptionRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error(), nil)
	}
	if err := h.Validator.ValidateDescriptionRequest(req); err != nil {
		return badRequest(c, "Validation failed", validator.FieldErrors(err))
	}

	return h.serve(c, generation{
		kind:  generator.KindDescription,
		blank: generator.IsBlank(req.Title),
		options: map[string]interface{}{
			"call_to_action":     generator.NormalizeCTA(req.CallToAction),
			"include_hashtags":   req.IncludeHashtags,
			"include_timestamps": req.IncludeTimestamps,
			"key_point_count":    len(generator.SplitKeyPoints(req.KeyPoints)),
		},
		run: func(ctx context.Context) (interface{}, error) {
			result, err := h.Service.GenerateDescription(ctx, *req)
			if result == nil {
				return nil, err
			}
			return result, err
		},
	})
}

// @Summary Analyze SEO
// @Description Score a title, description and tag list
// @Tags generators
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session identifier"
// @Param request body generator.SEORequest true "SEO request"
// @Success 200 {object} handlers.SuccessResponse{data=generator.SEOResult}
// @Success 204 "Blank title, nothing analyzed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid option or input over its maxLength"
// @Failure 409 {object} handlers.ErrorResponse "Analysis already in progress"
// @Router /seo/analyze [post]
func (h *GeneratorHandler) AnalyzeSEO(c *fiber.Ctx) error {
	req := new(generator.SEORequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Invalid request body: "+err.Error(), nil)
	}
	if err := h.Validator.ValidateSEORequest(req); err != nil {
		return badRequest(c, "Validation failed", validator.FieldErrors(err))
	}

	return h.serve(c, generation{
		kind:  generator.KindSEO,
		blank: generator.IsBlank(req.Title),
		options: map[string]interface{}{
			"title_length": generator.CharacterCount(req.Title),
			"tag_count":    len(generator.ParseTags(req.Tags)),
		},
		run: func(ctx context.Context) (interface{}, error) {
			result, err := h.Service.Analyze(ctx, *req)
			if result == nil {
				return nil, err
			}
			return result, err
		},
	})
}

// serve drives one request through the session state machine
func (h *GeneratorHandler) serve(c *fiber.Ctx, g generation) error {
	sessionID := middleware.GetSessionID(c)
	kind := string(g.kind)
	log := logger.WithSession(sessionID).With("request_id", middleware.GetRequestID(c), "kind", kind)

	if g.blank {
		metrics.ObserveGeneration(kind, models.OutcomeSkipped)
		h.Sessions.Skip(sessionID, g.kind)
		h.recordEvent(c, g, models.OutcomeSkipped, 0, log)
		return c.SendStatus(fiber.StatusNoContent)
	}

	if err := h.Sessions.Begin(sessionID, g.kind); err != nil {
		if errors.Is(err, session.ErrInFlight) {
			metrics.ObserveGeneration(kind, models.OutcomeConflict)
			h.recordEvent(c, g, models.OutcomeConflict, 0, log)
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"error":   "Generation already in progress",
			})
		}
		return err
	}

	metrics.StartGeneration(kind)
	start := time.Now()
	result, err := g.run(c.UserContext())
	duration := time.Since(start)

	if err != nil {
		metrics.EndGeneration(kind, models.OutcomeFailed, duration, false)
		h.Sessions.Fail(sessionID, g.kind, err.Error())
		h.recordEvent(c, g, models.OutcomeFailed, duration, log)
		log.Error("Generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Generation failed",
		})
	}

	if result == nil {
		metrics.EndGeneration(kind, models.OutcomeSkipped, duration, false)
		h.Sessions.Fail(sessionID, g.kind, "empty input")
		h.recordEvent(c, g, models.OutcomeSkipped, duration, log)
		return c.SendStatus(fiber.StatusNoContent)
	}

	metrics.EndGeneration(kind, models.OutcomeReady, duration, true)
	h.Sessions.Complete(sessionID, g.kind, duration, result)
	if err := h.Usage.Record(c.UserContext(), g.kind); err != nil {
		log.Error("Failed to record usage", "error", err)
	}
	h.recordEvent(c, g, models.OutcomeReady, duration, log)
	log.Info("Generation completed", "duration_ms", duration.Milliseconds())

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// recordEvent stores request metadata in the event log when one is configured.
// Failures are logged and never fail the request.
func (h *GeneratorHandler) recordEvent(c *fiber.Ctx, g generation, outcome string, duration time.Duration, log *slog.Logger) {
	if h.Events == nil {
		return
	}

	options, err := json.Marshal(g.options)
	if err != nil {
		log.Error("Failed to encode event options", "error", err)
		return
	}

	event := &models.GenerationEvent{
		Kind:       string(g.kind),
		SessionID:  middleware.GetSessionID(c),
		RequestID:  middleware.GetRequestID(c),
		Outcome:    outcome,
		DurationMs: duration.Milliseconds(),
		Options:    datatypes.JSON(options),
	}
	if err := h.Events.Record(event); err != nil {
		log.Error("Failed to record generation event", "error", err)
	}
}

func badRequest(c *fiber.Ctx, message string, fields map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Success: false,
		Error:   message,
		Fields:  fields,
	})
}
