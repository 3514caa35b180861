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

const searchPromptEN = `Generate %d detailed articles about "%s". For each article, provide:

1. Title (engaging and relevant)
2. Long snippet (more than 200 words)
3. Category with: name, detailed description (200+ words), wikipedia link, image URL
4. Author with: name, profession, detailed bio (40+ words), wikipedia link, image URL

Return the result as valid JSON matching this shape:
{
  "articles": [
    {
      "id": "unique-uuid",
      "title": "Article Title",
      "snippet": "Long detailed snippet...",
      "category": {"name": "...", "description": "...", "link": "https://en.wikipedia.org/wiki/...", "image": "https://..."},
      "author": {"name": "...", "profession": "...", "bio": "...", "link": "https://en.wikipedia.org/wiki/...", "image": "https://..."}
    }
  ]
}`

const searchPromptAR = `أنشئ %d مقالات تفصيلية حول موضوع "%s". لكل مقال، قدم:

1. العنوان (جذاب ومناسب)
2. ملخص طويل (أكثر من 200 كلمة)
3. الفئة مع: الاسم، وصف مفصل (أكثر من 200 كلمة)، رابط ويكيبيديا، رابط صورة
4. المؤلف مع: الاسم، المهنة، نبذة مفصلة، رابط ويكيبيديا، رابط صورة

أرجع النتيجة بتنسيق JSON صالح يطابق الشكل التالي:
{
  "articles": [
    {
      "id": "unique-uuid",
      "title": "...",
      "snippet": "...",
      "category": {"name": "...", "description": "...", "link": "https://ar.wikipedia.org/wiki/...", "image": "https://..."},
      "author": {"name": "...", "profession": "...", "bio": "...", "link": "https://ar.wikipedia.org/wiki/...", "image": "https://..."}
    }
  ]
}`

func (g *generator) SearchArticles(ctx context.Context, query, language string, maxResults int) ([]ArticleDraft, error) {
	trimmedQuery := strings.TrimSpace(query)
	if trimmedQuery == "" {
		return nil, eris.New("query is required")
	}

	if maxResults <= 0 {
		return nil, eris.New("number of results must be positive")
	}

	promptTemplate := searchPromptEN
	if language == "ar" {
		promptTemplate = searchPromptAR
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, maxResults, trimmedQuery)),
		},
		ResponseFormat: buildSearchResponseFormat(),
		Temperature:    openai.Float(searchTemperature),
		MaxTokens:      openai.Int(searchMaxTokens),
	}

	fields := logrus.Fields{"query": trimmedQuery, "language": language}

	content, err := g.execute(ctx, params, fields)
	if err != nil {
		return nil, err
	}

	drafts, err := parseArticleDrafts(content)
	if err != nil {
		g.logError(fields, err, "parsing search response")
		return nil, err
	}

	if len(drafts) > maxResults {
		drafts = drafts[:maxResults]
	}

	return drafts, nil
}

// parseArticleDrafts accepts either the documented envelope, a bare array, or a
// single object. Models routinely pick any of the three.
func parseArticleDrafts(raw string) ([]ArticleDraft, error) {
	trimmed := stripCodeFence(raw)
	if trimmed == "" {
		return nil, eris.New("llm search response is empty")
	}

	var envelope struct {
		Articles []ArticleDraft `json:"articles"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err == nil && len(envelope.Articles) > 0 {
		return envelope.Articles, nil
	}

	var list []ArticleDraft
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil && len(list) > 0 {
		return list, nil
	}

	var single ArticleDraft
	if err := json.Unmarshal([]byte(trimmed), &single); err != nil {
		return nil, eris.Wrap(err, "decoding llm search response json")
	}

	if strings.TrimSpace(single.Title) == "" && strings.TrimSpace(single.Snippet) == "" {
		return nil, eris.New("llm search response contained no articles")
	}

	return []ArticleDraft{single}, nil
}

func buildSearchResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"articles"},
		"properties": map[string]any{
			"articles": map[string]any{
				"type":        "array",
				"items":       articleDraftSchema(),
				"description": "Generated article search results.",
			},
		},
	}

	return jsonSchemaFormat("article_search_results", "Structured article search results payload", schema)
}

func articleDraftSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"id", "title", "snippet", "category", "author"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"title":    map[string]any{"type": "string"},
			"snippet":  map[string]any{"type": "string"},
			"category": categoryDraftSchema(),
			"author":   authorDraftSchema(),
		},
	}
}

func categoryDraftSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"name", "description", "link", "image"},
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"link":        map[string]any{"type": "string"},
			"image":       map[string]any{"type": "string"},
		},
	}
}

func authorDraftSchema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"name", "profession", "bio", "link", "image"},
		"properties": map[string]any{
			"name":       map[string]any{"type": "string"},
			"profession": map[string]any{"type": "string"},
			"bio":        map[string]any{"type": "string"},
			"link":       map[string]any{"type": "string"},
			"image":      map[string]any{"type": "string"},
		},
	}
}
