package generator

// Kind identifies one of the three generators
type Kind string

const (
	KindTitles      Kind = "titles"
	KindDescription Kind = "description"
	KindSEO         Kind = "seo"
)

// Kinds lists every generator in display order
var Kinds = []Kind{KindTitles, KindDescription, KindSEO}

// Category is the video category picked for title generation
type Category string

const (
	CategoryGeneral       Category = "general"
	CategoryGaming        Category = "gaming"
	CategoryTech          Category = "tech"
	CategoryLifestyle     Category = "lifestyle"
	CategoryEducation     Category = "education"
	CategoryEntertainment Category = "entertainment"
	CategoryMusic         Category = "music"
	CategoryFitness       Category = "fitness"
)

// Tone is the requested tone for title generation
type Tone string

const (
	ToneEngaging     Tone = "engaging"
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneExciting     Tone = "exciting"
	ToneInformative  Tone = "informative"
	ToneFunny        Tone = "funny"
)

// CallToAction selects the CTA block of a description
type CallToAction string

const (
	CTASubscribe CallToAction = "subscribe"
	CTAComment   CallToAction = "comment"
	CTAFollow    CallToAction = "follow"
	CTACustom    CallToAction = "custom"
)

// Difficulty is the ranking difficulty of a keyword
type Difficulty string

const (
	DifficultyLow    Difficulty = "Low"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHigh   Difficulty = "High"
)

// Option is a selectable value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoryOptions lists the supported categories
var CategoryOptions = []Option{
	{Value: string(CategoryGeneral), Label: "General"},
	{Value: string(CategoryGaming), Label: "Gaming"},
	{Value: string(CategoryTech), Label: "Technology"},
	{Value: string(CategoryLifestyle), Label: "Lifestyle"},
	{Value: string(CategoryEducation), Label: "Education"},
	{Value: string(CategoryEntertainment), Label: "Entertainment"},
	{Value: string(CategoryMusic), Label: "Music"},
	{Value: string(CategoryFitness), Label: "Fitness"},
}

// ToneOptions lists the supported tones
var ToneOptions = []Option{
	{Value: string(ToneEngaging), Label: "Engaging"},
	{Value: string(ToneProfessional), Label: "Professional"},
	{Value: string(ToneCasual), Label: "Casual"},
	{Value: string(ToneExciting), Label: "Exciting"},
	{Value: string(ToneInformative), Label: "Informative"},
	{Value: string(ToneFunny), Label: "Funny"},
}

// CTAOptions lists the supported calls to action
var CTAOptions = []Option{
	{Value: string(CTASubscribe), Label: "Subscribe & Like"},
	{Value: string(CTAComment), Label: "Comment & Share"},
	{Value: string(CTAFollow), Label: "Follow & Notify"},
	{Value: string(CTACustom), Label: "Custom CTA"},
}

// TitleRequest represents a request for title ideas
type TitleRequest struct {
	Topic    string   `json:"topic" maxLength:"200"`
	Category Category `json:"category,omitempty"`
	Tone     Tone     `json:"tone,omitempty"`
}

// TitleResult holds generated titles. Category and Tone echo the normalized
// request values; they do not influence the titles.
type TitleResult struct {
	Titles   []string `json:"titles"`
	Category Category `json:"category"`
	Tone     Tone     `json:"tone"`
}

// DescriptionRequest represents a request for a video description
type DescriptionRequest struct {
	Title             string       `json:"title" maxLength:"500"`
	KeyPoints         string       `json:"key_points" maxLength:"5000"`
	CallToAction      CallToAction `json:"call_to_action,omitempty"`
	IncludeHashtags   bool         `json:"include_hashtags"`
	IncludeTimestamps bool         `json:"include_timestamps"`
}

// DescriptionResult holds the generated description text
type DescriptionResult struct {
	Description    string `json:"description"`
	CharacterCount int    `json:"character_count"`
	CharacterLimit int    `json:"character_limit"`
	WithinLimit    bool   `json:"within_limit"`
}

// SEORequest represents a request for SEO scoring
type SEORequest struct {
	Title       string `json:"title" maxLength:"500"`
	Description string `json:"description" maxLength:"5000"`
	Tags        string `json:"tags" maxLength:"1000"`
}

// TitleAnalysis describes the submitted title
type TitleAnalysis struct {
	Length     int      `json:"length"`
	Optimal    bool     `json:"optimal"`
	Keywords   []string `json:"keywords"`
	Engagement string   `json:"engagement"`
}

// KeywordRecord is a keyword suggestion with its search statistics
type KeywordRecord struct {
	Keyword        string     `json:"keyword"`
	SearchVolume   int        `json:"search_volume"`
	Difficulty     Difficulty `json:"difficulty"`
	DifficultyBand string     `json:"difficulty_band"`
	Relevance      int        `json:"relevance"`
}

// SEOResult contains the SEO analysis results
type SEOResult struct {
	Score         int             `json:"score"`
	ScoreBand     string          `json:"score_band"`
	TitleAnalysis TitleAnalysis   `json:"title_analysis"`
	Suggestions   []string        `json:"suggestions"`
	Keywords      []KeywordRecord `json:"keywords"`
	Tags          []string        `json:"tags"`
}
