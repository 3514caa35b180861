package llm

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/shared/constant"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

// Generator defines the behaviour for producing structured article and department payloads.
type Generator interface {
	SearchArticles(ctx context.Context, query, language string, maxResults int) ([]ArticleDraft, error)
	ArticleContent(ctx context.Context, articleID, query, language string) (*ContentDraft, error)
	DepartmentInfo(ctx context.Context, department, language string) (*DepartmentDraft, error)
}

// GeneratorOptions configures the chat-completion-backed generator.
type GeneratorOptions struct {
	Client *Client
	Model  string
}

type generator struct {
	client *Client
	logger *logrus.Logger
	model  string
}

const (
	searchTemperature     = 0.7
	contentTemperature    = 0.7
	departmentTemperature = 0.5

	searchMaxTokens     = 4000
	contentMaxTokens    = 4000
	departmentMaxTokens = 2000
)

// NewGenerator constructs a Generator backed by the chat completion client.
func NewGenerator(opts GeneratorOptions) (Generator, error) {
	if opts.Client == nil {
		return nil, eris.New("llm client is required")
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		return nil, eris.New("generator model is required")
	}

	return &generator{
		client: opts.Client,
		logger: opts.Client.logger,
		model:  model,
	}, nil
}

// execute sends the completion request and returns the trimmed reply content.
func (g *generator) execute(ctx context.Context, params openai.ChatCompletionNewParams, fields logrus.Fields) (string, error) {
	completion, err := g.client.chat.New(ctx, params)
	if err != nil {
		g.logError(fields, err, "requesting chat completion")
		return "", eris.Wrap(err, "requesting chat completion")
	}

	if len(completion.Choices) == 0 {
		err := eris.New("llm completion returned no choices")
		g.logError(fields, err, "processing chat completion")
		return "", err
	}

	choice := completion.Choices[0]
	if reason := strings.TrimSpace(choice.FinishReason); strings.EqualFold(reason, "content_filter") {
		err := eris.New("llm blocked the request via content filter")
		g.logError(fields, err, "generation blocked")
		return "", err
	}

	if refusal := strings.TrimSpace(choice.Message.Refusal); refusal != "" {
		err := eris.Errorf("llm refused to generate content: %s", refusal)
		g.logError(fields, err, "generation refused")
		return "", err
	}

	content := strings.TrimSpace(choice.Message.Content)
	if content == "" {
		err := eris.New("llm response content is empty")
		g.logError(fields, err, "processing chat completion")
		return "", err
	}

	return content, nil
}

func (g *generator) logError(fields logrus.Fields, err error, message string) {
	if g.logger == nil || err == nil {
		return
	}

	entry := g.logger.WithField("error", err.Error())
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	entry.Error(message)
}

// stripCodeFence removes a surrounding markdown code fence from a model reply.
func stripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSpace(trimmed)
	if strings.HasSuffix(trimmed, "```") {
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-3])
	}

	return trimmed
}

func jsonSchemaFormat(name, description string, schema map[string]any) openai.ChatCompletionNewParamsResponseFormatUnion {
	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        name,
				Description: openai.String(description),
				Strict:      openai.Bool(false),
				Schema:      schema,
			},
			Type: constant.ValueOf[constant.JSONSchema](),
		},
	}
}

var _ Generator = (*generator)(nil)
