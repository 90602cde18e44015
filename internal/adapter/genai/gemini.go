package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
	"gitlab.com/codeplatform.net/internal/domain"
)

// FallbackReply is returned when the model answers without any text.
const FallbackReply = "I'm not sure how to respond."

const (
	roleUser  = "user"
	roleModel = "model"
)

var _ secondary.Assistant = (*Gemini)(nil)

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini answers chat conversations with a Gemini model
type Gemini struct {
	models contentGenerator
	model  string
	logger primary.Logger
}

func NewGemini(ctx context.Context, cfg *config.GenAIConfig, logger primary.Logger) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Gemini{
		models: client.Models,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (g *Gemini) Reply(ctx context.Context, history []*domain.ChatMessage) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		contents = append(contents, &genai.Content{
			Role:  modelRole(msg.Role),
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Error("Gemini request failed", "model", g.model, "error", err)
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if text := firstText(resp); text != "" {
		return text, nil
	}
	g.logger.Warn("Gemini returned no text", "model", g.model)
	return FallbackReply, nil
}

// modelRole maps stored roles onto the two roles the API accepts.
func modelRole(role domain.ChatRole) string {
	if role == domain.ChatRoleAssistant {
		return roleModel
	}
	return roleUser
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil {
		return ""
	}
	return content.Parts[0].Text
}
