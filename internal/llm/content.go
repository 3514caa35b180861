package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

const contentPromptEN = `Create a comprehensive detailed article about "%s" with ID %s. Include:

1. Full article content (800+ words)
2. Category with: name, detailed description (200+ words), wikipedia link, image URL
3. Author with: name, profession, detailed bio, wikipedia link, image URL
4. Keywords (10-15 keywords)
5. Comprehensive summary (250-300 words)
6. Publication date (YYYY-MM-DD)

Return as valid JSON:
{
  "id": "%s",
  "full_text": "Complete article content...",
  "summary": "Comprehensive summary...",
  "category": {"name": "...", "description": "...", "link": "https://en.wikipedia.org/wiki/...", "image": "https://..."},
  "author": {"name": "...", "profession": "...", "bio": "...", "link": "https://en.wikipedia.org/wiki/...", "image": "https://..."},
  "keywords": ["keyword1", "keyword2"],
  "publish_date": "2024-01-15"
}`

const contentPromptAR = `أنشئ مقالاً تفصيلياً شاملاً حول "%s" بالمعرف %s. يجب أن يتضمن:

1. المحتوى الكامل (أكثر من 800 كلمة)
2. الفئة مع: الاسم، وصف مفصل (أكثر من 200 كلمة)، رابط ويكيبيديا، رابط صورة
3. المؤلف مع: الاسم، المهنة، نبذة مفصلة، رابط ويكيبيديا، رابط صورة
4. الكلمات المفتاحية (10-15 كلمة)
5. ملخص شامل (250-300 كلمة)
6. تاريخ النشر (YYYY-MM-DD)

أرجع النتيجة بتنسيق JSON صالح بنفس الشكل التالي:
{
  "id": "%s",
  "full_text": "...",
  "summary": "...",
  "category": {"name": "...", "description": "...", "link": "https://ar.wikipedia.org/wiki/...", "image": "https://..."},
  "author": {"name": "...", "profession": "...", "bio": "...", "link": "https://ar.wikipedia.org/wiki/...", "image": "https://..."},
  "keywords": ["..."],
  "publish_date": "2024-01-15"
}`

func (g *generator) ArticleContent(ctx context.Context, articleID, query, language string) (*ContentDraft, error) {
	trimmedID := strings.TrimSpace(articleID)
	if trimmedID == "" {
		return nil, eris.New("article id is required")
	}

	trimmedQuery := strings.TrimSpace(query)
	if trimmedQuery == "" {
		trimmedQuery = "general topic"
	}

	promptTemplate := contentPromptEN
	if language == "ar" {
		promptTemplate = contentPromptAR
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, trimmedQuery, trimmedID, trimmedID)),
		},
		ResponseFormat: buildContentResponseFormat(),
		Temperature:    openai.Float(contentTemperature),
		MaxTokens:      openai.Int(contentMaxTokens),
	}

	fields := logrus.Fields{"article_id": trimmedID, "query": trimmedQuery, "language": language}

	content, err := g.execute(ctx, params, fields)
	if err != nil {
		return nil, err
	}

	trimmed := stripCodeFence(content)
	var draft ContentDraft
	if err := json.Unmarshal([]byte(trimmed), &draft); err != nil {
		wrapped := eris.Wrap(err, "decoding llm content response json")
		g.logError(fields, wrapped, "parsing content response")
		return nil, wrapped
	}

	return &draft, nil
}

func buildContentResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"id", "full_text", "summary", "category", "author", "keywords", "publish_date"},
		"properties": map[string]any{
			"id":        map[string]any{"type": "string"},
			"full_text": map[string]any{"type": "string"},
			"summary":   map[string]any{"type": "string"},
			"category":  categoryDraftSchema(),
			"author":    authorDraftSchema(),
			"keywords": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"publish_date": map[string]any{"type": "string"},
		},
	}

	return jsonSchemaFormat("article_content", "Structured full article payload", schema)
}
