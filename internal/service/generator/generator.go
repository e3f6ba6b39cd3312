// Package generator produces video titles, descriptions and SEO reports from
// fixed templates. Every generator is a pure function of its request; the
// only side effect is a configurable delay that mimics a remote call.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chynybekuuludastan/creator_toolkit/internal/logger"
)

// DefaultDelay is the simulated latency applied before each result
const DefaultDelay = 2 * time.Second

// ErrDelayInterrupted is returned when the context ends during the delay
var ErrDelayInterrupted = errors.New("generation delay interrupted")

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Delayer waits before a result is handed back
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepDelayer waits on a timer and stops early when ctx is done
type SleepDelayer struct{}

func (SleepDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrDelayInterrupted, ctx.Err())
	}
}

// NoDelay returns immediately
type NoDelay struct{}

func (NoDelay) Wait(context.Context, time.Duration) error { return nil }

// Service runs the three generators
type Service struct {
	delayer Delayer
	delay   time.Duration
	logger  Logger
}

// ServiceOptions contains configuration for the generator service
type ServiceOptions struct {
	Delay   time.Duration
	Delayer Delayer
	Logger  Logger
}

// NewService creates a generator service. A negative delay disables it, zero
// selects DefaultDelay.
func NewService(opts ServiceOptions) *Service {
	if opts.Delay == 0 {
		opts.Delay = DefaultDelay
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Delayer == nil {
		opts.Delayer = SleepDelayer{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewKV(nil)
	}

	return &Service{
		delayer: opts.Delayer,
		delay:   opts.Delay,
		logger:  opts.Logger,
	}
}

// Delay returns the configured simulated latency
func (s *Service) Delay() time.Duration {
	return s.delay
}

// IsBlank reports whether a primary field is empty or whitespace-only.
// Generators return no result for blank primary fields.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// GenerateTitles returns ten title ideas for req.Topic. A nil result with a
// nil error means the topic was blank and nothing was generated.
func (s *Service) GenerateTitles(ctx context.Context, req TitleRequest) (*TitleResult, error) {
	if IsBlank(req.Topic) {
		s.logger.Debug("Skipping title generation, topic is blank")
		return nil, nil
	}

	if err := s.wait(ctx, KindTitles); err != nil {
		return nil, err
	}

	result := &TitleResult{
		Titles:   BuildTitles(req.Topic),
		Category: NormalizeCategory(req.Category),
		Tone:     NormalizeTone(req.Tone),
	}

	s.logger.Info("Generated titles", "count", len(result.Titles), "category", result.Category, "tone", result.Tone)
	return result, nil
}

// GenerateDescription builds a formatted description. A nil result with a
// nil error means the title was blank.
func (s *Service) GenerateDescription(ctx context.Context, req DescriptionRequest) (*DescriptionResult, error) {
	if IsBlank(req.Title) {
		s.logger.Debug("Skipping description generation, title is blank")
		return nil, nil
	}

	if err := s.wait(ctx, KindDescription); err != nil {
		return nil, err
	}

	text := BuildDescription(req)
	count := CharacterCount(text)
	result := &DescriptionResult{
		Description:    text,
		CharacterCount: count,
		CharacterLimit: DescriptionSoftLimit,
		WithinLimit:    count <= DescriptionSoftLimit,
	}

	s.logger.Info("Generated description", "characters", count, "cta", NormalizeCTA(req.CallToAction))
	return result, nil
}

// Analyze scores a title, description and tag list. A nil result with a nil
// error means the title was blank.
func (s *Service) Analyze(ctx context.Context, req SEORequest) (*SEOResult, error) {
	if IsBlank(req.Title) {
		s.logger.Debug("Skipping SEO analysis, title is blank")
		return nil, nil
	}

	if err := s.wait(ctx, KindSEO); err != nil {
		return nil, err
	}

	result := BuildSEOResult(req)
	s.logger.Info("Analyzed SEO", "title_length", result.TitleAnalysis.Length, "tags", len(result.Tags))
	return result, nil
}

func (s *Service) wait(ctx context.Context, kind Kind) error {
	if err := s.delayer.Wait(ctx, s.delay); err != nil {
		s.logger.Error("Generation delay interrupted", "kind", kind, "error", err)
		return err
	}
	return nil
}
