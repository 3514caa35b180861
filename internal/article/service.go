// Package article turns raw generation drafts into fully populated article
// records. Generation failures and malformed fields never reach callers:
// every gap is closed with deterministic fallback content, so the package
// always answers with complete records.
package article

import (
	"context"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"maqala/api/internal/images"
	"maqala/api/internal/llm"
)

const (
	defaultMaxResults = 5
	maxMaxResults     = 10
)

// Service produces search results, full article content, and department
// profiles. Calls only fail on invalid input, never on upstream trouble.
type Service interface {
	Search(ctx context.Context, query, language string, maxResults int) ([]Record, error)
	Content(ctx context.Context, articleID, query, language string, includeSummary bool) (*Content, error)
	Department(ctx context.Context, department, language string) (*Department, error)
}

// ServiceOptions contains the dependencies needed to construct a Service.
type ServiceOptions struct {
	Generator llm.Generator
	Finder    images.Finder
	Logger    *logrus.Logger
	SentryHub *sentry.Hub
}

type service struct {
	generator llm.Generator
	finder    images.Finder
	logger    *logrus.Logger
	sentryHub *sentry.Hub
}

// NewService validates the options and returns a ready Service.
func NewService(opts ServiceOptions) (Service, error) {
	if opts.Generator == nil {
		return nil, eris.New("generator is required")
	}
	if opts.Finder == nil {
		return nil, eris.New("image finder is required")
	}
	if opts.Logger == nil {
		return nil, eris.New("logger is required")
	}

	return &service{
		generator: opts.Generator,
		finder:    opts.Finder,
		logger:    opts.Logger,
		sentryHub: opts.SentryHub,
	}, nil
}

func (s *service) Search(ctx context.Context, query, language string, maxResults int) ([]Record, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, eris.New("query is required")
	}

	language = NormalizeLanguage(language)
	maxResults = clampMaxResults(maxResults)

	drafts, err := s.generator.SearchArticles(ctx, query, language, maxResults)
	if err != nil {
		s.recordError(err, "article search generation failed", logrus.Fields{
			"query":    query,
			"language": language,
		})
		return s.fallbackRecords(ctx, query, language, maxResults), nil
	}

	if len(drafts) == 0 {
		return s.fallbackRecords(ctx, query, language, maxResults), nil
	}

	records := make([]Record, 0, len(drafts))
	for i, draft := range drafts {
		records = append(records, s.normalizeRecord(ctx, draft, query, language, i))
	}

	return records, nil
}

func (s *service) Content(ctx context.Context, articleID, query, language string, includeSummary bool) (*Content, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return nil, eris.New("article id is required")
	}

	language = NormalizeLanguage(language)

	draft, err := s.generator.ArticleContent(ctx, articleID, query, language)
	if err != nil {
		s.recordError(err, "article content generation failed", logrus.Fields{
			"article_id": articleID,
			"language":   language,
		})
		content := s.fallbackContent(ctx, articleID, query, language)
		if !includeSummary {
			content.Summary = ""
		}
		return content, nil
	}

	return s.normalizeContent(ctx, draft, articleID, query, language, includeSummary), nil
}

func (s *service) Department(ctx context.Context, department, language string) (*Department, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, eris.New("department is required")
	}

	language = NormalizeLanguage(language)

	draft, err := s.generator.DepartmentInfo(ctx, department, language)
	if err != nil {
		s.recordError(err, "department generation failed", logrus.Fields{
			"department": department,
			"language":   language,
		})
		return s.fallbackDepartment(ctx, department, language), nil
	}

	return s.normalizeDepartment(ctx, draft, department, language), nil
}

// normalizeRecord fills every gap in a search draft with fallback content and
// resolves fresh image URLs. Draft images are ignored: generated URLs tend to
// point nowhere.
func (s *service) normalizeRecord(ctx context.Context, draft llm.ArticleDraft, query, language string, index int) Record {
	fallbackCategory := fallbackSearchCategory(language)
	fallbackAuthor := fallbackSearchAuthor(language, index)

	id := strings.TrimSpace(draft.ID)
	if id == "" {
		id = uuid.NewString()
	}

	category := Category{
		Name:        fillPresent(draft.Category.Name, fallbackCategory.Name),
		Description: fill(draft.Category.Description, minDescriptionWords, fallbackCategory.Description),
		Link:        fillPresent(draft.Category.Link, fallbackCategory.Link),
	}
	category.Image = s.finder.Find(ctx, category.Name, images.KindCategory)

	author := Author{
		Name:       fillPresent(draft.Author.Name, fallbackAuthor.Name),
		Profession: fillPresent(draft.Author.Profession, fallbackAuthor.Profession),
		Bio:        fill(draft.Author.Bio, minBioWords, fallbackAuthor.Bio),
		Link:       fillPresent(draft.Author.Link, fallbackAuthor.Link),
	}
	author.Image = s.finder.Find(ctx, author.Name, images.KindPerson)

	return Record{
		ID:          id,
		Title:       fillPresent(draft.Title, fallbackTitle(query, language, index)),
		Snippet:     fill(draft.Snippet, minSnippetWords, fallbackSnippet(query, language)),
		Category:    category,
		Author:      author,
		Language:    language,
		SourceQuery: query,
	}
}

func (s *service) normalizeContent(ctx context.Context, draft *llm.ContentDraft, articleID, query, language string, includeSummary bool) *Content {
	topic := contentTopic(query, language)
	fallbackCategory := fallbackContentCategory(language)
	fallbackAuthor := fallbackContentAuthor(language)

	category := Category{
		Name:        fillPresent(draft.Category.Name, fallbackCategory.Name),
		Description: fill(draft.Category.Description, minDescriptionWords, fallbackCategory.Description),
		Link:        fillPresent(draft.Category.Link, fallbackCategory.Link),
	}
	category.Image = s.finder.Find(ctx, category.Name, images.KindCategory)

	author := Author{
		Name:       fillPresent(draft.Author.Name, fallbackAuthor.Name),
		Profession: fillPresent(draft.Author.Profession, fallbackAuthor.Profession),
		Bio:        fill(draft.Author.Bio, minBioWords, fallbackAuthor.Bio),
		Link:       fillPresent(draft.Author.Link, fallbackAuthor.Link),
	}
	author.Image = s.finder.Find(ctx, author.Name, images.KindPerson)

	summary := ""
	if includeSummary {
		summary = fill(draft.Summary, minSummaryWords, fallbackSummary(topic, language))
	}

	return &Content{
		ID:          articleID,
		FullText:    fill(draft.FullText, minFullTextWords, fallbackFullText(topic, language)),
		Summary:     summary,
		Category:    category,
		Author:      author,
		Keywords:    fillList(draft.Keywords, fallbackKeywords(topic, language)),
		PublishDate: fillPresent(draft.PublishDate, fallbackPublishDate),
	}
}

func (s *service) normalizeDepartment(ctx context.Context, draft *llm.DepartmentDraft, department, language string) *Department {
	code := strings.TrimSpace(draft.Code)
	if code == "" {
		code = DepartmentCode(department)
	}

	name := fillPresent(draft.Name, DepartmentName(department, code, language))

	return &Department{
		Name:             name,
		Code:             code,
		Description:      fill(draft.Description, minDescriptionWords, fallbackDepartmentDescription(name, language)),
		Responsibilities: fillList(draft.Responsibilities, fallbackResponsibilities(name, language)),
		Objectives:       fillList(draft.Objectives, fallbackObjectives(language)),
		Logo:             s.finder.DepartmentLogo(ctx, name, code),
		Language:         language,
	}
}

func (s *service) fallbackRecords(ctx context.Context, query, language string, maxResults int) []Record {
	records := make([]Record, 0, maxResults)
	for i := 0; i < maxResults; i++ {
		records = append(records, s.normalizeRecord(ctx, llm.ArticleDraft{}, query, language, i))
	}
	return records
}

func (s *service) fallbackContent(ctx context.Context, articleID, query, language string) *Content {
	return s.normalizeContent(ctx, &llm.ContentDraft{}, articleID, query, language, true)
}

func (s *service) fallbackDepartment(ctx context.Context, department, language string) *Department {
	return s.normalizeDepartment(ctx, &llm.DepartmentDraft{}, department, language)
}

func (s *service) recordError(err error, message string, fields logrus.Fields) {
	s.logger.WithError(err).WithFields(fields).Error(message)

	if s.sentryHub != nil {
		s.sentryHub.CaptureException(err)
	}
}

func contentTopic(query, language string) string {
	topic := strings.TrimSpace(query)
	if topic != "" {
		return topic
	}
	if language == LanguageArabic {
		return "موضوع عام"
	}
	return "general topic"
}

func clampMaxResults(maxResults int) int {
	if maxResults <= 0 {
		return defaultMaxResults
	}
	if maxResults > maxMaxResults {
		return maxMaxResults
	}
	return maxResults
}
