package utils

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// DashScope exposes qwen models through an OpenAI-compatible endpoint, so the
// regular chat-completions client works against it.
const defaultDashScopeBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"

type QwenChatClient struct {
	client *openai.Client
	model  string
}

func NewQwenChatClient(apiKey, baseURL, model string) ChatClientInterface {
	if baseURL == "" {
		baseURL = defaultDashScopeBaseURL
	}
	if model == "" {
		model = "qwen-max"
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL

	return &QwenChatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (c *QwenChatClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("dashscope call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("dashscope returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
