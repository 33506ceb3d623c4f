package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// VertexClient reaches the same models through Vertex AI using
// application default credentials.
type VertexClient struct {
	client *genai.Client
	model  string
}

// NewVertexClient creates a Vertex AI backed client for project/location
func NewVertexClient(ctx context.Context, project, location, model string) (*VertexClient, error) {
	if project == "" || location == "" {
		return nil, fmt.Errorf("vertex project and location must be set")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  project,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &VertexClient{client: client, model: model}, nil
}

// GenerateContent implements the same contract as Client.GenerateContent
func (v *VertexClient) GenerateContent(ctx context.Context, system string, contents []Content) (string, error) {
	res, err := v.client.Models.GenerateContent(ctx, v.model, toGenai(contents), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", fmt.Errorf("API 연동 오류: %w", err)
	}

	if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidate
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}

func toGenai(contents []Content) []*genai.Content {
	out := make([]*genai.Content, 0, len(contents))
	for _, c := range contents {
		var role genai.Role = genai.RoleUser
		if c.Role == RoleModel {
			role = genai.RoleModel
		}
		var text string
		if len(c.Parts) > 0 {
			text = c.Parts[0].Text
		}
		out = append(out, genai.NewContentFromText(text, role))
	}
	return out
}
