package article

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"maqala/api/internal/images"
	"maqala/api/internal/llm"
)

type stubGenerator struct {
	drafts     []llm.ArticleDraft
	content    *llm.ContentDraft
	department *llm.DepartmentDraft
	err        error
}

func (g *stubGenerator) SearchArticles(_ context.Context, _, _ string, _ int) ([]llm.ArticleDraft, error) {
	return g.drafts, g.err
}

func (g *stubGenerator) ArticleContent(_ context.Context, _, _, _ string) (*llm.ContentDraft, error) {
	return g.content, g.err
}

func (g *stubGenerator) DepartmentInfo(_ context.Context, _, _ string) (*llm.DepartmentDraft, error) {
	return g.department, g.err
}

func newTestService(t *testing.T, generator llm.Generator) Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc, err := NewService(ServiceOptions{
		Generator: generator,
		Finder:    images.NewStaticFinder(),
		Logger:    logger,
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	return svc
}

func longText(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestSearchFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("upstream unavailable")})

	records, err := svc.Search(context.Background(), "quantum computing", LanguageEnglish, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("expected 5 fallback records, got %d", len(records))
	}

	for i, record := range records {
		if record.ID == "" {
			t.Errorf("record %d: missing id", i)
		}
		if !strings.Contains(record.Title, "quantum computing") {
			t.Errorf("record %d: fallback title should mention the query, got %q", i, record.Title)
		}
		if !strings.Contains(record.Snippet, "quantum computing") {
			t.Errorf("record %d: fallback snippet should mention the query, got %q", i, record.Snippet)
		}
		if wordCount(record.Snippet) < minSnippetWords {
			t.Errorf("record %d: snippet below minimum, %d words", i, wordCount(record.Snippet))
		}
		if record.Category.Name == "" || record.Category.Description == "" || record.Category.Image == "" {
			t.Errorf("record %d: incomplete category %+v", i, record.Category)
		}
		if record.Author.Name == "" || record.Author.Bio == "" || record.Author.Image == "" {
			t.Errorf("record %d: incomplete author %+v", i, record.Author)
		}
		if record.Language != LanguageEnglish {
			t.Errorf("record %d: language %q", i, record.Language)
		}
		if record.SourceQuery != "quantum computing" {
			t.Errorf("record %d: source query %q", i, record.SourceQuery)
		}
	}

	if records[0].Author.Name == records[1].Author.Name {
		t.Errorf("fallback authors should be numbered, both %q", records[0].Author.Name)
	}
}

func TestSearchReplacesShortFields(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{drafts: []llm.ArticleDraft{
		{
			ID:      "abc-123",
			Title:   "The Rise of Solar Power",
			Snippet: "Too short.",
			Author:  llm.AuthorDraft{Name: "Jane Field", Bio: "Short bio."},
		},
	}})

	records, err := svc.Search(context.Background(), "solar power", LanguageEnglish, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.ID != "abc-123" {
		t.Errorf("expected draft id kept, got %q", record.ID)
	}
	if record.Title != "The Rise of Solar Power" {
		t.Errorf("expected draft title kept, got %q", record.Title)
	}
	if record.Snippet == "Too short." || !strings.Contains(record.Snippet, "solar power") {
		t.Errorf("short snippet should be replaced with fallback, got %q", record.Snippet)
	}
	if record.Author.Name != "Jane Field" {
		t.Errorf("expected draft author kept, got %q", record.Author.Name)
	}
	if record.Author.Bio == "Short bio." {
		t.Error("short bio should be replaced with fallback")
	}
}

func TestSearchKeepsLongFields(t *testing.T) {
	t.Parallel()

	snippet := longText(minSnippetWords + 10)

	svc := newTestService(t, &stubGenerator{drafts: []llm.ArticleDraft{
		{Title: "Long Enough", Snippet: snippet},
	}})

	records, err := svc.Search(context.Background(), "anything", LanguageEnglish, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if records[0].Snippet != snippet {
		t.Errorf("long snippet should be kept as generated")
	}
}

func TestSearchGeneratesMissingIDs(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{drafts: []llm.ArticleDraft{{Title: "No ID"}, {Title: "Also none"}}})

	records, err := svc.Search(context.Background(), "topic", LanguageEnglish, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if records[0].ID == "" || records[1].ID == "" {
		t.Fatal("expected generated ids")
	}
	if records[0].ID == records[1].ID {
		t.Fatalf("expected distinct ids, both %q", records[0].ID)
	}
}

func TestSearchClampsMaxResults(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("down")})

	records, err := svc.Search(context.Background(), "topic", LanguageEnglish, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != defaultMaxResults {
		t.Errorf("expected default of %d records, got %d", defaultMaxResults, len(records))
	}

	records, err = svc.Search(context.Background(), "topic", LanguageEnglish, 50)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(records) != maxMaxResults {
		t.Errorf("expected cap of %d records, got %d", maxMaxResults, len(records))
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{})

	if _, err := svc.Search(context.Background(), "   ", LanguageEnglish, 5); err == nil {
		t.Fatal("expected error for blank query")
	}
}

func TestSearchArabicFallback(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("down")})

	records, err := svc.Search(context.Background(), "الذكاء الاصطناعي", LanguageArabic, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if !strings.Contains(records[0].Title, "مقال شامل") {
		t.Errorf("expected Arabic fallback title, got %q", records[0].Title)
	}
	if records[0].Language != LanguageArabic {
		t.Errorf("expected Arabic language tag, got %q", records[0].Language)
	}
}

func TestContentFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("down")})

	content, err := svc.Content(context.Background(), "article-1", "renewable energy", LanguageEnglish, true)
	if err != nil {
		t.Fatalf("Content: %v", err)
	}

	if content.ID != "article-1" {
		t.Errorf("expected requested id, got %q", content.ID)
	}
	if !strings.Contains(content.FullText, "renewable energy") {
		t.Errorf("fallback full text should mention the query, got %q", content.FullText)
	}
	if wordCount(content.FullText) < minFullTextWords {
		t.Errorf("fallback full text below minimum, %d words", wordCount(content.FullText))
	}
	if wordCount(content.Summary) < minSummaryWords {
		t.Errorf("fallback summary below minimum, %d words", wordCount(content.Summary))
	}
	if len(content.Keywords) == 0 {
		t.Error("expected fallback keywords")
	}
	if content.PublishDate != fallbackPublishDate {
		t.Errorf("expected fallback publish date, got %q", content.PublishDate)
	}
}

func TestContentOmitsSummaryWhenNotRequested(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{content: &llm.ContentDraft{
		FullText: longText(minFullTextWords + 10),
		Summary:  longText(minSummaryWords + 10),
	}})

	content, err := svc.Content(context.Background(), "article-1", "", LanguageEnglish, false)
	if err != nil {
		t.Fatalf("Content: %v", err)
	}

	if content.Summary != "" {
		t.Errorf("expected empty summary, got %q", content.Summary)
	}
}

func TestContentKeepsGeneratedText(t *testing.T) {
	t.Parallel()

	fullText := longText(minFullTextWords + 50)

	svc := newTestService(t, &stubGenerator{content: &llm.ContentDraft{
		ID:       "ignored-id",
		FullText: fullText,
		Keywords: []string{"energy", " ", "solar"},
	}})

	content, err := svc.Content(context.Background(), "requested-id", "energy", LanguageEnglish, true)
	if err != nil {
		t.Fatalf("Content: %v", err)
	}

	if content.ID != "requested-id" {
		t.Errorf("content id must match the request, got %q", content.ID)
	}
	if content.FullText != fullText {
		t.Error("long full text should be kept as generated")
	}
	if len(content.Keywords) != 2 {
		t.Errorf("expected blank keywords dropped, got %v", content.Keywords)
	}
}

func TestDepartmentFallsBackOnGeneratorError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("down")})

	department, err := svc.Department(context.Background(), "Information Technology", LanguageEnglish)
	if err != nil {
		t.Fatalf("Department: %v", err)
	}

	if department.Code != "IT" {
		t.Errorf("expected IT code, got %q", department.Code)
	}
	if department.Name != "Information Technology" {
		t.Errorf("expected mapped name, got %q", department.Name)
	}
	if !strings.Contains(department.Description, "Information Technology") {
		t.Errorf("fallback description should mention the department, got %q", department.Description)
	}
	if wordCount(department.Description) < minDescriptionWords {
		t.Errorf("fallback description below minimum, %d words", wordCount(department.Description))
	}
	if len(department.Responsibilities) != 5 || len(department.Objectives) != 5 {
		t.Errorf("expected 5 responsibilities and objectives, got %d and %d",
			len(department.Responsibilities), len(department.Objectives))
	}
	if department.Logo == "" {
		t.Error("expected logo URL")
	}
}

func TestDepartmentKeepsDraftValues(t *testing.T) {
	t.Parallel()

	description := longText(minDescriptionWords + 10)

	svc := newTestService(t, &stubGenerator{department: &llm.DepartmentDraft{
		Name:             "People Operations",
		Code:             "POPS",
		Description:      description,
		Responsibilities: []string{"hiring", "onboarding"},
		Objectives:       []string{"retention"},
	}})

	department, err := svc.Department(context.Background(), "people ops", LanguageEnglish)
	if err != nil {
		t.Fatalf("Department: %v", err)
	}

	if department.Name != "People Operations" || department.Code != "POPS" {
		t.Errorf("expected draft identity kept, got %q / %q", department.Name, department.Code)
	}
	if department.Description != description {
		t.Error("long description should be kept as generated")
	}
	if len(department.Responsibilities) != 2 {
		t.Errorf("expected draft responsibilities kept, got %v", department.Responsibilities)
	}
}

func TestDepartmentArabicFallback(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, &stubGenerator{err: eris.New("down")})

	department, err := svc.Department(context.Background(), "human resources", LanguageArabic)
	if err != nil {
		t.Fatalf("Department: %v", err)
	}

	if department.Name != "الموارد البشرية" {
		t.Errorf("expected Arabic department name, got %q", department.Name)
	}
	if department.Language != LanguageArabic {
		t.Errorf("expected Arabic language tag, got %q", department.Language)
	}
}

func TestNewServiceValidation(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	if _, err := NewService(ServiceOptions{Finder: images.NewStaticFinder(), Logger: logger}); err == nil {
		t.Error("expected error for missing generator")
	}
	if _, err := NewService(ServiceOptions{Generator: &stubGenerator{}, Logger: logger}); err == nil {
		t.Error("expected error for missing finder")
	}
	if _, err := NewService(ServiceOptions{Generator: &stubGenerator{}, Finder: images.NewStaticFinder()}); err == nil {
		t.Error("expected error for missing logger")
	}
}
