package generator

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDelayer struct {
	mu    sync.Mutex
	calls []time.Duration
	err   error
}

func (r *recordingDelayer) Wait(_ context.Context, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, d)
	return r.err
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(d Delayer) *Service {
	return NewService(ServiceOptions{Delayer: d, Logger: nopLogger{}})
}

func TestNewService_Defaults(t *testing.T) {
	s := NewService(ServiceOptions{Logger: nopLogger{}})
	assert.Equal(t, DefaultDelay, s.Delay())
	assert.IsType(t, SleepDelayer{}, s.delayer)

	s = NewService(ServiceOptions{Delay: -1, Logger: nopLogger{}})
	assert.Equal(t, time.Duration(0), s.Delay())
}

func TestGenerateTitles(t *testing.T) {
	d := &recordingDelayer{}
	s := newTestService(d)

	result, err := s.GenerateTitles(context.Background(), TitleRequest{Topic: "Go Generics"})
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Titles, 10)
	for _, title := range result.Titles {
		assert.Contains(t, title, "Go Generics")
	}
	assert.Equal(t, "The Ultimate Guide to Go Generics (2024)", result.Titles[0])
	assert.Equal(t, "Go Generics: What Nobody Tells You", result.Titles[3])
	assert.Equal(t, "I Tried Go Generics for 30 Days - Here's What Happened", result.Titles[4])
	assert.Equal(t, "The Truth About Go Generics That Will Shock You", result.Titles[9])
	assert.Equal(t, CategoryGeneral, result.Category)
	assert.Equal(t, ToneEngaging, result.Tone)
	assert.Equal(t, []time.Duration{DefaultDelay}, d.calls)
}

func TestGenerateTitles_Deterministic(t *testing.T) {
	s := newTestService(NoDelay{})
	ctx := context.Background()

	first, err := s.GenerateTitles(ctx, TitleRequest{Topic: "sourdough"})
	require.NoError(t, err)
	second, err := s.GenerateTitles(ctx, TitleRequest{Topic: "sourdough"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateTitles_CategoryAndToneDoNotChangeTitles(t *testing.T) {
	s := newTestService(NoDelay{})
	ctx := context.Background()

	plain, err := s.GenerateTitles(ctx, TitleRequest{Topic: "chess"})
	require.NoError(t, err)
	styled, err := s.GenerateTitles(ctx, TitleRequest{Topic: "chess", Category: CategoryGaming, Tone: ToneFunny})
	require.NoError(t, err)

	assert.Equal(t, plain.Titles, styled.Titles)
	assert.Equal(t, CategoryGaming, styled.Category)
	assert.Equal(t, ToneFunny, styled.Tone)
}

func TestGenerateTitles_TopicKeptVerbatim(t *testing.T) {
	s := newTestService(NoDelay{})

	result, err := s.GenerateTitles(context.Background(), TitleRequest{Topic: "  {topic} & café  "})
	require.NoError(t, err)

	assert.Equal(t, "The Ultimate Guide to   {topic} & café   (2024)", result.Titles[0])
}

func TestGenerateTitles_BlankTopic(t *testing.T) {
	for _, topic := range []string{"", "   ", "\t\n"} {
		d := &recordingDelayer{}
		s := newTestService(d)

		result, err := s.GenerateTitles(context.Background(), TitleRequest{Topic: topic})
		assert.NoError(t, err)
		assert.Nil(t, result)
		assert.Empty(t, d.calls, "delay must not run for blank topic %q", topic)
	}
}

func TestGenerateTitles_DelayError(t *testing.T) {
	boom := errors.New("boom")
	s := newTestService(&recordingDelayer{err: boom})

	result, err := s.GenerateTitles(context.Background(), TitleRequest{Topic: "x"})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, result)
}

func TestGenerateDescription_Result(t *testing.T) {
	s := newTestService(NoDelay{})

	result, err := s.GenerateDescription(context.Background(), DescriptionRequest{
		Title:        "My Video",
		CallToAction: CTASubscribe,
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, strings.HasPrefix(result.Description, "🎯 My Video\n\n"))
	assert.True(t, strings.HasSuffix(result.Description, CopyrightLine))
	assert.Equal(t, CharacterCount(result.Description), result.CharacterCount)
	assert.Equal(t, DescriptionSoftLimit, result.CharacterLimit)
	assert.True(t, result.WithinLimit)
}

func TestGenerateDescription_OverSoftLimitIsNotTruncated(t *testing.T) {
	s := newTestService(NoDelay{})
	long := strings.Repeat("a", DescriptionSoftLimit)

	result, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: long})
	require.NoError(t, err)

	assert.False(t, result.WithinLimit)
	assert.Contains(t, result.Description, long)
	assert.Greater(t, result.CharacterCount, DescriptionSoftLimit)
}

func TestGenerateDescription_BlankTitle(t *testing.T) {
	d := &recordingDelayer{}
	s := newTestService(d)

	result, err := s.GenerateDescription(context.Background(), DescriptionRequest{Title: " ", KeyPoints: "a"})
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, d.calls)
}

func TestAnalyze_Result(t *testing.T) {
	s := newTestService(NoDelay{})

	result, err := s.Analyze(context.Background(), SEORequest{Title: "X", Tags: "a, b ,,c"})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 85, result.Score)
	assert.Equal(t, "good", result.ScoreBand)
	assert.Equal(t, []string{"a", "b", "c"}, result.Tags)
	assert.Equal(t, 1, result.TitleAnalysis.Length)
	assert.False(t, result.TitleAnalysis.Optimal)
	assert.Len(t, result.Suggestions, 4)
	assert.Len(t, result.Keywords, 4)
}

func TestAnalyze_BlankTitle(t *testing.T) {
	s := newTestService(NoDelay{})

	result, err := s.Analyze(context.Background(), SEORequest{Title: "\t", Tags: "a,b"})
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestSleepDelayer(t *testing.T) {
	t.Run("waits for the duration", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, SleepDelayer{}.Wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("zero duration returns immediately", func(t *testing.T) {
		assert.NoError(t, SleepDelayer{}.Wait(context.Background(), 0))
	})

	t.Run("stops when context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := SleepDelayer{}.Wait(ctx, time.Hour)
		assert.ErrorIs(t, err, ErrDelayInterrupted)
	})
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\r\n"))
	assert.False(t, IsBlank(" a "))
}
