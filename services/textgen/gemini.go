package textgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wayplan/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiGenerator is the Gemini-backed TextGenerator.
type GeminiGenerator struct {
	model *genai.GenerativeModel
}

func NewGeminiGenerator(apiKey string) (*GeminiGenerator, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiGenerator{model: model}, nil
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func (g *GeminiGenerator) GenerateTitle(ctx context.Context, params models.FilterParams) (string, error) {
	return g.generate(ctx, titlePrompt(params))
}

func (g *GeminiGenerator) GenerateSubtitle(ctx context.Context, params models.FilterParams) (string, error) {
	return g.generate(ctx, subtitlePrompt(params))
}

func (g *GeminiGenerator) GenerateWeather(ctx context.Context, params models.FilterParams) (models.WeatherBlurb, error) {
	raw, err := g.generate(ctx, weatherPrompt(params))
	if err != nil {
		return models.WeatherBlurb{}, err
	}

	// The prompt asks for a JSON object; strip markdown fencing if present.
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.Trim(raw, "` \n")
	var blurb models.WeatherBlurb
	if err := json.Unmarshal([]byte(raw), &blurb); err != nil {
		return models.WeatherBlurb{}, fmt.Errorf("gemini weather: unparseable response: %w", err)
	}
	return blurb, nil
}

func (g *GeminiGenerator) GenerateDescription(ctx context.Context, params models.FilterParams, item models.SelectedItem) (string, error) {
	return g.generate(ctx, descriptionPrompt(params, item))
}

func (g *GeminiGenerator) GenerateTips(ctx context.Context, params models.FilterParams, item models.SelectedItem) (string, error) {
	return g.generate(ctx, tipsPrompt(params, item))
}
