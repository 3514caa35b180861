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

const departmentPromptEN = `Generate comprehensive information about the department "%s". Include:

1. Full department name in English
2. Department code/abbreviation (e.g., IT, HR, FIN)
3. Detailed description (200+ words)
4. Key responsibilities
5. Objectives and goals
6. Appropriate logo URL

Return as valid JSON:
{
  "name": "Full Department Name",
  "code": "DEPT_CODE",
  "description": "Detailed description...",
  "responsibilities": ["responsibility 1", "responsibility 2"],
  "objectives": ["objective 1", "objective 2"],
  "logo": "logo_url",
  "language": "en"
}`

const departmentPromptAR = `أنشئ معلومات شاملة عن القسم "%s". يجب أن تتضمن:

1. الاسم الكامل للقسم باللغة العربية
2. الرمز أو الاختصار (مثل IT, HR, FIN)
3. وصف مفصل للقسم (أكثر من 200 كلمة)
4. المسؤوليات الرئيسية
5. الأهداف والمهام
6. رابط شعار مناسب للقسم

أرجع النتيجة بتنسيق JSON صالح:
{
  "name": "الاسم الكامل للقسم",
  "code": "الرمز",
  "description": "وصف مفصل...",
  "responsibilities": ["مسؤولية 1", "مسؤولية 2"],
  "objectives": ["هدف 1", "هدف 2"],
  "logo": "رابط الشعار",
  "language": "ar"
}`

func (g *generator) DepartmentInfo(ctx context.Context, department, language string) (*DepartmentDraft, error) {
	trimmedDepartment := strings.TrimSpace(department)
	if trimmedDepartment == "" {
		return nil, eris.New("department is required")
	}

	promptTemplate := departmentPromptEN
	if language == "ar" {
		promptTemplate = departmentPromptAR
	}

	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(fmt.Sprintf(promptTemplate, trimmedDepartment)),
		},
		ResponseFormat: buildDepartmentResponseFormat(),
		Temperature:    openai.Float(departmentTemperature),
		MaxTokens:      openai.Int(departmentMaxTokens),
	}

	fields := logrus.Fields{"department": trimmedDepartment, "language": language}

	content, err := g.execute(ctx, params, fields)
	if err != nil {
		return nil, err
	}

	trimmed := stripCodeFence(content)
	var draft DepartmentDraft
	if err := json.Unmarshal([]byte(trimmed), &draft); err != nil {
		wrapped := eris.Wrap(err, "decoding llm department response json")
		g.logError(fields, wrapped, "parsing department response")
		return nil, wrapped
	}

	return &draft, nil
}

func buildDepartmentResponseFormat() openai.ChatCompletionNewParamsResponseFormatUnion {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"name", "code", "description", "responsibilities", "objectives", "logo", "language"},
		"properties": map[string]any{
			"name":        map[string]any{"type": "string"},
			"code":        map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"responsibilities": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"objectives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"logo":     map[string]any{"type": "string"},
			"language": map[string]any{"type": "string"},
		},
	}

	return jsonSchemaFormat("department_info", "Structured department information payload", schema)
}
