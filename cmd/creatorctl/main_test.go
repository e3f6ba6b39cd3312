package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

func runCLI(t *testing.T, clip *fakeClipboard, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, cli{
		stdout:    &stdout,
		stderr:    &stderr,
		clipboard: clip,
	})
	return code, stdout.String(), stderr.String()
}

func TestRun_NoCommand(t *testing.T) {
	code, _, stderr := runCLI(t, nil)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage: creatorctl")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, nil, "thumbnails")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "thumbnails"`)
}

func TestRun_Titles(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "titles", "-topic", "Knitting", "-delay", "0")
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "1. The Ultimate Guide to Knitting (2024)", lines[0])
	assert.Equal(t, "10. The Truth About Knitting That Will Shock You", lines[9])
}

func TestRun_TitlesBlankTopic(t *testing.T) {
	code, stdout, stderr := runCLI(t, nil, "titles", "-topic", "  ", "-delay", "0")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "topic is empty")
}

func TestRun_TitlesInvalidCategory(t *testing.T) {
	code, _, stderr := runCLI(t, nil, "titles", "-topic", "x", "-category", "cooking", "-delay", "0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid category")
}

func TestRun_TitlesCopy(t *testing.T) {
	clip := &fakeClipboard{}
	code, _, stderr := runCLI(t, clip, "titles", "-topic", "Go", "-copy", "-delay", "0")
	require.Equal(t, exitOK, code)

	assert.True(t, strings.HasPrefix(clip.text, "The Ultimate Guide to Go (2024)\n"))
	assert.Len(t, strings.Split(clip.text, "\n"), 10)
	assert.Contains(t, stderr, "Copied to clipboard")
}

func TestRun_CopyFailureIsOnlyAWarning(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no display")}
	code, stdout, stderr := runCLI(t, clip, "description", "-title", "Vlog", "-copy", "-delay", "0")

	assert.Equal(t, exitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "🎯 Vlog\n\n"))
	assert.Contains(t, stderr, "Warning: clipboard unavailable: no display")
}

func TestRun_DescriptionKeyPoints(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "description",
		"-title", "Bread", "-points", `Flour\n\nWater `, "-cta", "comment", "-timestamps", "-delay", "0")
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "📋 What you'll learn:\n1. Flour\n2. Water\n\n")
	assert.Contains(t, stdout, "⏰ TIMESTAMPS:")
	assert.NotContains(t, stdout, "📌 TAGS:")
}

func TestRun_DescriptionInvalidCTA(t *testing.T) {
	code, _, stderr := runCLI(t, nil, "description", "-title", "T", "-cta", "shout", "-delay", "0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid call_to_action")
}

func TestRun_SEOJSON(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "seo", "-title", "How to bake", "-tags", "a, b ,,c", "-json", "-delay", "0")
	require.Equal(t, exitOK, code)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, float64(85), result["score"])
	assert.Equal(t, []interface{}{"a", "b", "c"}, result["tags"])
}

func TestRun_SEOText(t *testing.T) {
	code, stdout, _ := runCLI(t, nil, "seo", "-title", strings.Repeat("x", 40), "-delay", "0")
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "SEO score: 85 (good)")
	assert.Contains(t, stdout, "Title: 40 characters, optimal")
	assert.NotContains(t, stdout, "Tags:")
}

func TestRun_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, []string{"titles", "-topic", "x", "-delay", "1h"}, cli{stdout: &stdout, stderr: &stderr})

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "Interrupted")
}

func TestRun_BadFlag(t *testing.T) {
	code, _, _ := runCLI(t, nil, "seo", "-nope")
	assert.Equal(t, exitUsage, code)
}
