package generator

import (
	"strings"
	"unicode/utf8"
)

const (
	// SEOScore is the placeholder score reported for every title
	SEOScore = 85

	// Optimal title length range, inclusive
	MinOptimalTitleLength = 30
	MaxOptimalTitleLength = 60

	titleEngagement = "High"
)

var titleKeywords = []string{"tutorial", "guide", "tips"}

var seoSuggestions = []string{
	`Add power words like "Ultimate", "Secret", or "Proven"`,
	"Include numbers for better click-through rates",
	"Consider adding current year (2024) for freshness",
	"Use brackets or parentheses for additional context",
}

var keywordRecords = []KeywordRecord{
	{Keyword: "tutorial", SearchVolume: 50000, Difficulty: DifficultyMedium, Relevance: 95},
	{Keyword: "guide", SearchVolume: 30000, Difficulty: DifficultyLow, Relevance: 90},
	{Keyword: "tips", SearchVolume: 40000, Difficulty: DifficultyHigh, Relevance: 85},
	{Keyword: "how to", SearchVolume: 80000, Difficulty: DifficultyMedium, Relevance: 92},
}

var difficultyBands = map[Difficulty]string{
	DifficultyLow:    "easy",
	DifficultyMedium: "moderate",
	DifficultyHigh:   "hard",
}

// DifficultyBand maps a difficulty to its band, "unknown" for anything else
func DifficultyBand(d Difficulty) string {
	if band, ok := difficultyBands[d]; ok {
		return band
	}
	return "unknown"
}

// ScoreBand buckets a score into good, fair or poor
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return "good"
	case score >= 60:
		return "fair"
	default:
		return "poor"
	}
}

// IsOptimalTitleLength reports whether length lies in the 30-60 range
func IsOptimalTitleLength(length int) bool {
	return length >= MinOptimalTitleLength && length <= MaxOptimalTitleLength
}

// ParseTags splits a comma-separated list, trimming entries and dropping
// empty ones. Order is preserved.
func ParseTags(tags string) []string {
	parsed := make([]string, 0)
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			parsed = append(parsed, tag)
		}
	}
	return parsed
}

// BuildSEOResult produces the report for req. Only the title length and the
// tags depend on the input.
func BuildSEOResult(req SEORequest) *SEOResult {
	length := utf8.RuneCountInString(req.Title)

	keywords := make([]KeywordRecord, len(keywordRecords))
	for i, k := range keywordRecords {
		k.DifficultyBand = DifficultyBand(k.Difficulty)
		keywords[i] = k
	}

	return &SEOResult{
		Score:     SEOScore,
		ScoreBand: ScoreBand(SEOScore),
		TitleAnalysis: TitleAnalysis{
			Length:     length,
			Optimal:    IsOptimalTitleLength(length),
			Keywords:   append([]string(nil), titleKeywords...),
			Engagement: titleEngagement,
		},
		Suggestions: append([]string(nil), seoSuggestions...),
		Keywords:    keywords,
		Tags:        ParseTags(req.Tags),
	}
}
