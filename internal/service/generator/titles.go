package generator

import "strings"

const topicPlaceholder = "{topic}"

// titleTemplates are filled in this order; the topic is inserted verbatim.
var titleTemplates = []string{
	"The Ultimate Guide to {topic} (2024)",
	"5 Amazing {topic} Tips That Actually Work",
	"Why {topic} is Changing Everything",
	"{topic}: What Nobody Tells You",
	"I Tried {topic} for 30 Days - Here's What Happened",
	"The Secret to Mastering {topic}",
	"{topic} Mistakes Everyone Makes (And How to Avoid Them)",
	"This {topic} Trick Will Blow Your Mind",
	"From Zero to Pro: My {topic} Journey",
	"The Truth About {topic} That Will Shock You",
}

// BuildTitles fills every template with topic
func BuildTitles(topic string) []string {
	titles := make([]string, 0, len(titleTemplates))
	for _, tmpl := range titleTemplates {
		titles = append(titles, strings.ReplaceAll(tmpl, topicPlaceholder, topic))
	}
	return titles
}

// NormalizeCategory returns c when it is a known category, general otherwise
func NormalizeCategory(c Category) Category {
	if ValidCategory(string(c)) {
		return c
	}
	return CategoryGeneral
}

// NormalizeTone returns t when it is a known tone, engaging otherwise
func NormalizeTone(t Tone) Tone {
	if ValidTone(string(t)) {
		return t
	}
	return ToneEngaging
}

// ValidCategory reports whether value names a category
func ValidCategory(value string) bool {
	return hasOption(CategoryOptions, value)
}

// ValidTone reports whether value names a tone
func ValidTone(value string) bool {
	return hasOption(ToneOptions, value)
}

func hasOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
