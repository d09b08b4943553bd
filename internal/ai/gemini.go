package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/pkg/apperror"
)

// GeminiGenerator implements Generator on top of Google Gemini. Two
// model handles are kept because the quiz path forces JSON output while
// the summary path returns plain text.
type GeminiGenerator struct {
	client       *genai.Client
	summaryModel *genai.GenerativeModel
	quizModel    *genai.GenerativeModel
}

func NewGeminiGenerator(ctx context.Context, apiKey, modelName string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	summaryModel := client.GenerativeModel(modelName)
	summaryModel.SetTemperature(0.2)
	summaryModel.SetMaxOutputTokens(512)

	quizModel := client.GenerativeModel(modelName)
	quizModel.SetTemperature(0.3)
	quizModel.SetMaxOutputTokens(4096)
	quizModel.ResponseMIMEType = "application/json"

	return &GeminiGenerator{
		client:       client,
		summaryModel: summaryModel,
		quizModel:    quizModel,
	}, nil
}

func (g *GeminiGenerator) GenerateSummary(ctx context.Context, principles []model.LegalPrinciple) (string, error) {
	if len(principles) == 0 {
		return "", fmt.Errorf("%w: legalPrinciple must be a non-empty array", apperror.ErrValidation)
	}

	text, err := g.generate(ctx, g.summaryModel, buildSummaryPrompt(principles))
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrGenerationFailed, err)
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", fmt.Errorf("%w: empty summary response", apperror.ErrGenerationFailed)
	}

	return summary, nil
}

func (g *GeminiGenerator) GenerateQuiz(ctx context.Context, principles []model.LegalPrinciple, count int) ([]model.QuizQuestion, error) {
	if len(principles) == 0 {
		return nil, fmt.Errorf("%w: legalPrinciple must be a non-empty array", apperror.ErrValidation)
	}
	if count < 1 || count > 50 {
		return nil, fmt.Errorf("%w: numQuizGenerated must be between 1 and 50", apperror.ErrValidation)
	}

	text, err := g.generate(ctx, g.quizModel, buildQuizPrompt(principles, count))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrGenerationFailed, err)
	}

	return parseQuizResponse(text, count)
}

func (g *GeminiGenerator) generate(ctx context.Context, m *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response from completion service")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt), nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}

func (g *GeminiGenerator) Close() {
	g.client.Close()
}
