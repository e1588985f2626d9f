package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical medication adherence assistant.

You receive aggregated adherence statistics for one person's medication
schedules over a time window. You must base your conclusions only on the
provided data.

Your goals:
- Describe the person's dose completion in clear, neutral language.
- Highlight which medicines are taken reliably and which are skipped or missed.
- Point out timing patterns if the data supports them.
- Give practical, behavioral suggestions to improve routine (reminders,
  pairing doses with meals or bedtime, keeping medicines visible).

Rules:
- Do NOT provide medical advice, diagnoses, or dosage changes.
- Do NOT speculate about why a medicine was prescribed.
- Never suggest stopping or altering a course; direct such questions to the
  prescribing doctor.
- If data is limited, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing adherence over the window.",
  "observations": [
    "3-6 bullet points about patterns per medicine and overall.",
    "Include at least one item about the most-missed medicine if any doses were missed."
  ],
  "guidance": [
    "3-5 concrete, non-medical routine suggestions tailored to these numbers."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this person's medication adherence.

- "adherence" holds the overall completion ratio and taken/skipped/overdue counts.
- "medicines" breaks the same counts down per medicine.
- "window" is the period the counts cover.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating adherence insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes aggregated adherence data and returns an
	// LLM-generated narrative.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate an adherence narrative.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
