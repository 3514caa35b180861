package article

// Supported content languages.
const (
	LanguageEnglish = "en"
	LanguageArabic  = "ar"
)

// NormalizeLanguage coerces any unknown language code to English.
func NormalizeLanguage(language string) string {
	if language == LanguageArabic {
		return LanguageArabic
	}
	return LanguageEnglish
}

// Category describes the topical grouping attached to a generated article.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Image       string `json:"image"`
}

// Author describes the fictional byline attached to a generated article.
type Author struct {
	Name       string `json:"name"`
	Profession string `json:"profession"`
	Bio        string `json:"bio"`
	Link       string `json:"link"`
	Image      string `json:"image"`
}

// Record is one article search result. Every field is populated: gaps left by
// the generation endpoint are filled with deterministic fallback values.
type Record struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Snippet     string   `json:"snippet"`
	Category    Category `json:"category"`
	Author      Author   `json:"author"`
	Language    string   `json:"language"`
	SourceQuery string   `json:"source_query"`
}

// Content is the full body of a single article.
type Content struct {
	ID          string   `json:"id"`
	FullText    string   `json:"full_text"`
	Summary     string   `json:"summary"`
	Category    Category `json:"category"`
	Author      Author   `json:"author"`
	Keywords    []string `json:"keywords"`
	PublishDate string   `json:"publish_date"`
}

// Department is the generated profile of an organisational department.
type Department struct {
	Name             string   `json:"name"`
	Code             string   `json:"code"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Objectives       []string `json:"objectives"`
	Logo             string   `json:"logo"`
	Language         string   `json:"language"`
}
