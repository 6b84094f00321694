package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type openAIProvider struct {
	apiKey string
	client *openai.Client
	logger *zap.Logger
}

// NewOpenAIProvider creates a provider backed by the OpenAI chat completions
// API. An empty key is allowed; calls then fail until one is configured.
func NewOpenAIProvider(apiKey string, logger *zap.Logger) Provider {
	return &openAIProvider{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		logger: logger,
	}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is not configured")
	}

	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if req.ImageBase64 != "" {
		message.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: req.Prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/jpeg;base64," + req.ImageBase64,
				},
			},
		}
	} else {
		message.Content = req.Prompt
	}

	completionReq := openai.ChatCompletionRequest{
		Model:     openai.GPT4o,
		Messages:  []openai.ChatCompletionMessage{message},
		MaxTokens: req.MaxTokens,
	}
	if req.JSONResponse {
		completionReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, completionReq)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no content received from OpenAI")
	}

	return resp.Choices[0].Message.Content, nil
}
