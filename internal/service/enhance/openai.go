package enhance

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"k8s.io/klog/v2"
)

// OpenAIProvider wraps the Eino OpenAI-compatible ChatModel. This is the
// primary AI call path.
type OpenAIProvider struct {
	chatModel model.ToolCallingChatModel
}

func NewOpenAIProvider(apiKey, baseURL, modelName string, maxTokens int) (*OpenAIProvider, error) {
	klog.V(6).Infof("creating OpenAI chat model: model=%s baseURL=%s", modelName, baseURL)

	config := &openai.ChatModelConfig{
		APIKey: apiKey,
		Model:  modelName,
	}
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if maxTokens > 0 {
		config.MaxTokens = &maxTokens
	}

	chatModel, err := openai.NewChatModel(context.Background(), config)
	if err != nil {
		klog.Errorf("failed to create chat model: %v", err)
		return nil, err
	}
	return &OpenAIProvider{chatModel: chatModel}, nil
}

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Generate(ctx context.Context, system, prompt string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	}

	resp, err := p.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}
