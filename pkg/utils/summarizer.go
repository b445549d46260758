package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

// SummarizerInterface produces a short natural-language summary of a travel
// prompt (an itinerary, a flight comparison, anything the caller formats).
type SummarizerInterface interface {
	Summarize(ctx context.Context, prompt string) (string, error)
	Provider() string
}

const summarySystemPrompt = "You are a travel assistant. Summarize the following travel data " +
	"in a short, friendly paragraph. Plain text only, no markdown."

type OpenAISummarizer struct {
	client *openai.Client
	model  string
}

func NewOpenAISummarizer(apiKey, model string) *OpenAISummarizer {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAISummarizer{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (s *OpenAISummarizer) Provider() string { return "openai" }

func (s *OpenAISummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

func NewGeminiSummarizer(apiKey, model string) (*GeminiSummarizer, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiSummarizer{client: client, model: model}, nil
}

func (s *GeminiSummarizer) Provider() string { return "gemini" }

func (s *GeminiSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	m := s.client.GenerativeModel(s.model)
	m.SetTemperature(0.3)
	m.SetTopP(0.5)
	m.SetTopK(20)

	resp, err := m.GenerateContent(ctx, genai.Text(summarySystemPrompt+"\n\n"+prompt))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no content generated")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (s *GeminiSummarizer) Close() error {
	return s.client.Close()
}

// NewSummarizer picks the provider based on config.
func NewSummarizer(provider, apiKey, model string) (SummarizerInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAISummarizer(apiKey, model), nil
	case "gemini":
		return NewGeminiSummarizer(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
