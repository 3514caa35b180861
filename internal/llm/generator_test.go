package llm

import (
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared/constant"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

type fakeChatService struct {
	response   *openai.ChatCompletion
	err        error
	lastParams openai.ChatCompletionNewParams
}

var fakeBaseURL = "https://fake-llm-provider.ai/api/v1"

func (f *fakeChatService) New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	f.lastParams = body
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func completionWithContent(content string) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		ID:      "gen-1",
		Created: time.Now().Unix(),
		Model:   "test-model",
		Object:  constant.ValueOf[constant.ChatCompletion](),
		Choices: []openai.ChatCompletionChoice{
			{
				FinishReason: "stop",
				Index:        0,
				Message: openai.ChatCompletionMessage{
					Content: content,
					Role:    constant.ValueOf[constant.Assistant](),
				},
			},
		},
	}
}

func newTestGenerator(t *testing.T, chat *fakeChatService) Generator {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := &Client{chat: chat, logger: logger, baseURL: fakeBaseURL}

	generator, err := NewGenerator(GeneratorOptions{Client: client, Model: "llm-stub-model"})
	if err != nil {
		t.Fatalf("NewGenerator returned error: %v", err)
	}

	return generator
}

func TestSearchArticlesParsesEnvelope(t *testing.T) {
	t.Parallel()

	payload := `{"articles":[{"id":"a-1","title":"Alpha","snippet":"First snippet.","category":{"name":"Tech","description":"About tech.","link":"https://en.wikipedia.org/wiki/Technology","image":"https://img/cat.jpg"},"author":{"name":"Jo Field","profession":"writer","bio":"Writes things.","link":"https://en.wikipedia.org/wiki/Jo_Field","image":"https://img/jo.jpg"}},{"id":"a-2","title":"Beta","snippet":"Second snippet.","category":{"name":"Tech","description":"","link":"","image":""},"author":{"name":"","profession":"","bio":"","link":"","image":""}}]}`

	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	drafts, err := generator.SearchArticles(context.Background(), "artificial intelligence", "en", 3)
	if err != nil {
		t.Fatalf("SearchArticles returned error: %v", err)
	}

	if len(drafts) != 2 {
		t.Fatalf("expected 2 drafts, got %d", len(drafts))
	}

	if drafts[0].Title != "Alpha" {
		t.Fatalf("expected first title Alpha, got %q", drafts[0].Title)
	}

	if drafts[0].Category.Name != "Tech" {
		t.Fatalf("expected category Tech, got %q", drafts[0].Category.Name)
	}

	if chat.lastParams.Model != "llm-stub-model" {
		t.Fatalf("expected model llm-stub-model, got %s", chat.lastParams.Model)
	}

	if chat.lastParams.ResponseFormat.OfJSONSchema == nil {
		t.Fatalf("expected JSON schema response format to be set")
	}
}

func TestSearchArticlesParsesBareArrayAndTruncates(t *testing.T) {
	t.Parallel()

	payload := `[{"id":"1","title":"A","snippet":"s"},{"id":"2","title":"B","snippet":"s"},{"id":"3","title":"C","snippet":"s"}]`

	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	drafts, err := generator.SearchArticles(context.Background(), "ai", "en", 2)
	if err != nil {
		t.Fatalf("SearchArticles returned error: %v", err)
	}

	if len(drafts) != 2 {
		t.Fatalf("expected drafts truncated to 2, got %d", len(drafts))
	}
}

func TestSearchArticlesStripsCodeFence(t *testing.T) {
	t.Parallel()

	payload := "```json\n{\"articles\":[{\"id\":\"1\",\"title\":\"Fenced\",\"snippet\":\"s\"}]}\n```"

	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	drafts, err := generator.SearchArticles(context.Background(), "ai", "en", 1)
	if err != nil {
		t.Fatalf("SearchArticles returned error: %v", err)
	}

	if len(drafts) != 1 || drafts[0].Title != "Fenced" {
		t.Fatalf("expected fenced payload to parse, got %+v", drafts)
	}
}

func TestSearchArticlesRejectsNonJSON(t *testing.T) {
	t.Parallel()

	chat := &fakeChatService{response: completionWithContent("Here are some articles about AI instead of JSON.")}
	generator := newTestGenerator(t, chat)

	if _, err := generator.SearchArticles(context.Background(), "ai", "en", 3); err == nil {
		t.Fatalf("expected error when response is not JSON")
	}
}

func TestSearchArticlesPropagatesAPIError(t *testing.T) {
	t.Parallel()

	chat := &fakeChatService{err: eris.New("api failure")}
	generator := newTestGenerator(t, chat)

	if _, err := generator.SearchArticles(context.Background(), "ai", "en", 3); err == nil {
		t.Fatalf("expected error when chat service returns failure")
	}
}

func TestSearchArticlesRequiresQuery(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, &fakeChatService{})

	if _, err := generator.SearchArticles(context.Background(), " ", "en", 3); err == nil {
		t.Fatalf("expected error when query is empty")
	}
}

func TestSearchArticlesUsesArabicPrompt(t *testing.T) {
	t.Parallel()

	payload := `{"articles":[{"id":"1","title":"مقال","snippet":"نص"}]}`
	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	if _, err := generator.SearchArticles(context.Background(), "الذكاء الاصطناعي", "ar", 1); err != nil {
		t.Fatalf("SearchArticles returned error: %v", err)
	}

	if len(chat.lastParams.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(chat.lastParams.Messages))
	}

	prompt := chat.lastParams.Messages[0].OfUser.Content.OfString.Value
	if !strings.Contains(prompt, "أنشئ") {
		t.Fatalf("expected Arabic prompt, got %q", prompt)
	}
}

func TestArticleContentParsesDraft(t *testing.T) {
	t.Parallel()

	payload := `{"id":"abc","full_text":"Body text.","summary":"Summary.","category":{"name":"General"},"author":{"name":"Writer"},"keywords":["one","two"],"publish_date":"2024-01-15"}`

	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	draft, err := generator.ArticleContent(context.Background(), "abc", "ai", "en")
	if err != nil {
		t.Fatalf("ArticleContent returned error: %v", err)
	}

	if draft.FullText != "Body text." {
		t.Fatalf("expected full text, got %q", draft.FullText)
	}

	if len(draft.Keywords) != 2 {
		t.Fatalf("expected 2 keywords, got %d", len(draft.Keywords))
	}
}

func TestArticleContentRequiresID(t *testing.T) {
	t.Parallel()

	generator := newTestGenerator(t, &fakeChatService{})

	if _, err := generator.ArticleContent(context.Background(), " ", "ai", "en"); err == nil {
		t.Fatalf("expected error when article id is empty")
	}
}

func TestArticleContentDefaultsQuery(t *testing.T) {
	t.Parallel()

	payload := `{"id":"abc","full_text":"Body."}`
	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	if _, err := generator.ArticleContent(context.Background(), "abc", "", "en"); err != nil {
		t.Fatalf("ArticleContent returned error: %v", err)
	}

	prompt := chat.lastParams.Messages[0].OfUser.Content.OfString.Value
	if !strings.Contains(prompt, "general topic") {
		t.Fatalf("expected default query in prompt, got %q", prompt)
	}
}

func TestDepartmentInfoParsesDraft(t *testing.T) {
	t.Parallel()

	payload := `{"name":"Information Technology","code":"IT","description":"Runs the systems.","responsibilities":["networks"],"objectives":["uptime"],"logo":"https://img/logo.png","language":"en"}`

	chat := &fakeChatService{response: completionWithContent(payload)}
	generator := newTestGenerator(t, chat)

	draft, err := generator.DepartmentInfo(context.Background(), "IT", "en")
	if err != nil {
		t.Fatalf("DepartmentInfo returned error: %v", err)
	}

	if draft.Code != "IT" {
		t.Fatalf("expected code IT, got %q", draft.Code)
	}

	if len(draft.Responsibilities) != 1 {
		t.Fatalf("expected 1 responsibility, got %d", len(draft.Responsibilities))
	}
}

func TestDepartmentInfoRejectsNonJSON(t *testing.T) {
	t.Parallel()

	chat := &fakeChatService{response: completionWithContent("The IT department handles computers.")}
	generator := newTestGenerator(t, chat)

	if _, err := generator.DepartmentInfo(context.Background(), "IT", "en"); err == nil {
		t.Fatalf("expected error when response is not JSON")
	}
}

func TestGeneratorRejectsRefusal(t *testing.T) {
	t.Parallel()

	response := completionWithContent("")
	response.Choices[0].Message.Refusal = "cannot comply"

	chat := &fakeChatService{response: response}
	generator := newTestGenerator(t, chat)

	if _, err := generator.DepartmentInfo(context.Background(), "IT", "en"); err == nil {
		t.Fatalf("expected error when model refuses")
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"{\"a\":1}":                     "{\"a\":1}",
		"```json\n{\"a\":1}\n```":       "{\"a\":1}",
		"```\n{\"a\":1}\n```":           "{\"a\":1}",
		"  ```json\n{\"a\":1}\n```  ":   "{\"a\":1}",
		"```json\n{\"a\":\n\"b\"}\n```": "{\"a\":\n\"b\"}",
	}

	for input, expected := range cases {
		if got := stripCodeFence(input); got != expected {
			t.Fatalf("stripCodeFence(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestNewGeneratorRequiresClient(t *testing.T) {
	t.Parallel()

	if _, err := NewGenerator(GeneratorOptions{Model: "model"}); err == nil {
		t.Fatalf("expected error when client is nil")
	}
}

func TestNewGeneratorRequiresModel(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	client := &Client{chat: &fakeChatService{}, logger: logger, baseURL: fakeBaseURL}

	if _, err := NewGenerator(GeneratorOptions{Client: client}); err == nil {
		t.Fatalf("expected error when model is empty")
	}
}

func TestGeneratorLive(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		t.Logf("%v", eris.Wrap(err, "loading .env file"))
	}

	if os.Getenv("LLM_LIVE_TEST") != "1" {
		t.Skip("live generator test disabled; set LLM_LIVE_TEST=1 to enable")
	}

	apiKey := strings.TrimSpace(os.Getenv("LLM_API_KEY"))
	if apiKey == "" {
		t.Skip("LLM_API_KEY is required for the live generator test")
	}

	client, err := NewClient(ClientOptions{
		APIKey:  apiKey,
		BaseURL: strings.TrimSpace(os.Getenv("LLM_ENDPOINT")),
		Logger:  logger,
	})
	if err != nil {
		t.Fatalf("failed to build live client: %v", err)
	}

	model := strings.TrimSpace(os.Getenv("LLM_MODEL"))
	if model == "" {
		model = "llama3-8b-8192"
	}

	generator, err := NewGenerator(GeneratorOptions{Client: client, Model: model})
	if err != nil {
		t.Fatalf("failed to create live generator: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	drafts, err := generator.SearchArticles(ctx, "artificial intelligence", "en", 2)
	duration := time.Since(start)
	if err != nil {
		t.Fatalf("live generator call failed: %v", err)
	}

	if len(drafts) == 0 {
		t.Fatalf("live generator returned no drafts")
	}

	t.Logf("LLM model %q responded in %s (drafts=%d)", model, duration, len(drafts))
	for _, draft := range drafts {
		t.Logf("draft %q snippet length=%d", draft.Title, len(draft.Snippet))
	}
}
