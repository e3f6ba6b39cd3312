package generator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DescriptionSoftLimit is the recommended maximum description length. It is
// reported, never enforced.
const DescriptionSoftLimit = 5000

const (
	learnHeader = "📋 What you'll learn:\n"

	timestampsBlock = "\n\n⏰ TIMESTAMPS:\n0:00 - Introduction\n2:30 - Main Content\n8:45 - Key Points\n12:00 - Conclusion"

	connectBlock = "📱 CONNECT WITH ME:\n• Website: [Your Website]\n• Twitter: [Your Twitter]\n• Instagram: [Your Instagram]\n\n"

	hashtagLine = "#YouTube #Tutorial #Guide #Tips #Education"

	disclaimerBlock = "⚠️ DISCLAIMER:\nThis content is for educational purposes only. Please consult with professionals for specific advice.\n\n"

	// CopyrightLine always closes a description
	CopyrightLine = "© 2024 [Your Channel Name]. All rights reserved."
)

var ctaText = map[CallToAction]string{
	CTASubscribe: "👍 If you found this helpful, please LIKE and SUBSCRIBE for more content!\n🔔 Hit the notification bell to never miss an update!",
	CTAComment:   "💬 Let me know your thoughts in the comments below!\n📤 Share this video with someone who needs to see it!",
	CTAFollow:    "🔗 Follow me for more content like this!\n🔔 Turn on notifications to stay updated!",
	CTACustom:    "👆 Don't forget to engage with this content!",
}

// NormalizeCTA returns cta when the table knows it, subscribe otherwise
func NormalizeCTA(cta CallToAction) CallToAction {
	if _, ok := ctaText[cta]; ok {
		return cta
	}
	return CTASubscribe
}

// ValidCTA reports whether value names a call to action
func ValidCTA(value string) bool {
	_, ok := ctaText[CallToAction(value)]
	return ok
}

// CTAText returns the CTA block for cta, falling back to subscribe
func CTAText(cta CallToAction) string {
	return ctaText[NormalizeCTA(cta)]
}

// SplitKeyPoints splits a multi-line string into trimmed, non-blank points
func SplitKeyPoints(keyPoints string) []string {
	points := make([]string, 0)
	for _, line := range strings.Split(keyPoints, "\n") {
		if point := strings.TrimSpace(line); point != "" {
			points = append(points, point)
		}
	}
	return points
}

// BuildDescription assembles the description blocks in their fixed order
func BuildDescription(req DescriptionRequest) string {
	var sb strings.Builder

	sb.WriteString("🎯 ")
	sb.WriteString(req.Title)
	sb.WriteString("\n\n")

	if points := SplitKeyPoints(req.KeyPoints); len(points) > 0 {
		sb.WriteString(learnHeader)
		for i, point := range points {
			sb.WriteString(strconv.Itoa(i + 1))
			sb.WriteString(". ")
			sb.WriteString(point)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(CTAText(req.CallToAction))
	sb.WriteString("\n\n")

	if req.IncludeTimestamps {
		sb.WriteString(timestampsBlock)
		sb.WriteString("\n\n")
	}

	sb.WriteString(connectBlock)

	if req.IncludeHashtags {
		sb.WriteString("📌 TAGS:\n")
		sb.WriteString(hashtagLine)
		sb.WriteString("\n\n")
	}

	sb.WriteString(disclaimerBlock)
	sb.WriteString(CopyrightLine)

	return sb.String()
}

// CharacterCount counts the characters (runes) of s
func CharacterCount(s string) int {
	return utf8.RuneCountInString(s)
}
