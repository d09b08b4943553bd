package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lexora.app/lawstudybackend/internal/model"
	"lexora.app/lawstudybackend/pkg/apperror"
)

// Generator produces case summaries and quizzes from legal principles.
// Implementations call an external completion service; tests substitute
// a fake.
type Generator interface {
	GenerateSummary(ctx context.Context, principles []model.LegalPrinciple) (string, error)
	GenerateQuiz(ctx context.Context, principles []model.LegalPrinciple, count int) ([]model.QuizQuestion, error)
}

func buildSummaryPrompt(principles []model.LegalPrinciple) string {
	var contents []string
	for _, p := range principles {
		if p.Content != "" {
			contents = append(contents, p.Content)
		}
	}

	return fmt.Sprintf(`Summarize the following legal principles into a concise, plain-English paragraph (3-6 sentences). Avoid repetition and focus on the core holdings and rules. If multiple principles overlap, merge them logically.

Legal principles:
- %s`, strings.Join(contents, "\n- "))
}

func buildQuizPrompt(principles []model.LegalPrinciple, count int) string {
	var lines []string
	for _, p := range principles {
		if p.Title != "" && p.Content != "" {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Title, p.Content))
		} else if p.Content != "" {
			lines = append(lines, p.Content)
		}
	}

	return fmt.Sprintf(`Based STRICTLY on the following legal principles, generate exactly %d multiple-choice quiz questions. Each question must:

1. Be directly based on the legal principles provided below
2. Have exactly 4 possible answers (A, B, C, D)
3. Have only one correct answer
4. Test understanding of the legal concepts, rules, or applications mentioned in the principles
5. Be clear and unambiguous

Legal Principles:
%s

Format your response as a JSON array with this exact structure:
[
  {
    "question": "Question text here?",
    "answers": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": "Option A"
  }
]

IMPORTANT:
- Generate exactly %d questions, no more, no less
- Base questions ONLY on the legal principles provided above
- Ensure the correctAnswer exactly matches one of the answers in the answers array
- Do not include any text outside the JSON array`, count, strings.Join(lines, "\n\n"), count)
}

// parseQuizResponse parses and validates the raw completion text. A
// single malformed generation is a hard failure; nothing is repaired or
// retried.
func parseQuizResponse(raw string, count int) ([]model.QuizQuestion, error) {
	raw = stripCodeFences(strings.TrimSpace(raw))
	if raw == "" {
		return nil, fmt.Errorf("%w: empty quiz response", apperror.ErrGenerationFailed)
	}

	var questions []model.QuizQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in quiz response", apperror.ErrGenerationFailed)
	}

	if len(questions) != count {
		return nil, fmt.Errorf("%w: expected exactly %d questions, got %d", apperror.ErrGenerationFailed, count, len(questions))
	}

	for _, q := range questions {
		if q.Question == "" || len(q.Answers) != 4 || q.CorrectAnswer == "" {
			return nil, fmt.Errorf("%w: invalid question structure", apperror.ErrGenerationFailed)
		}
		if !contains(q.Answers, q.CorrectAnswer) {
			return nil, fmt.Errorf("%w: correct answer must be one of the provided answers", apperror.ErrGenerationFailed)
		}
	}

	return questions, nil
}

// stripCodeFences removes a ```json ... ``` wrapper the model sometimes
// adds despite the JSON-only instruction.
func stripCodeFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
