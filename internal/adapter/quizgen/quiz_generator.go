package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// maxArticleChars bounds the article prefix embedded in the prompt to
// respect the model's token budget
const maxArticleChars = 6000

const quizPromptTemplate = `You are an AI assistant that generates educational quizzes from Wikipedia articles.
Article Title: "%s"
Article Content:
%s
Your goal is to analyze this article and return a strict JSON object with the following fields:
{
  "title": "%s",
  "summary": "<3-5 line summary of the article>",
  "key_entities": {
    "people": [list of important people],
    "organizations": [list of organizations],
    "locations": [list of key places]
  },
  "sections": [list of main section titles],
  "quiz": [
    {
      "question": "<question text>",
      "options": ["A)", "B)", "C)", "D)"],
      "answer": "<correct answer>",
      "difficulty": "<easy|medium|hard>",
      "explanation": "<short 1-line explanation>",
      "related_topics": [list of 2-3 related Wikipedia topics]
    }
  ]
}

Rules:
- Output only valid JSON - no markdown, no code fences, no text outside JSON.
- ALWAYS generate at least 5 questions.
- If the article has limited content, infer reasonable quiz questions.
- Do not include extra commentary or explanations.`

// Models sometimes wrap the JSON in code fences despite the prompt
var codeFenceRegex = regexp.MustCompile("```json|```")

// LLMQuizGenerator implements domain.QuizGenerationService on top of a
// langchaingo model
type LLMQuizGenerator struct {
	llm llms.Model
}

// NewLLMQuizGenerator creates a new quiz generator backed by the given model
func NewLLMQuizGenerator(llm llms.Model) (domain.QuizGenerationService, error) {
	if llm == nil {
		return nil, fmt.Errorf("llm model cannot be nil")
	}
	return &LLMQuizGenerator{llm: llm}, nil
}

// GenerateQuiz prompts the model with a bounded article prefix and
// normalizes its reply. A transport failure is returned as an error; an
// unparseable reply yields a degraded result carrying the raw text.
func (g *LLMQuizGenerator) GenerateQuiz(ctx context.Context, articleText string, title string) (*domain.GeneratedQuiz, error) {
	l := logger.Get()

	if utf8.RuneCountInString(articleText) > maxArticleChars {
		runes := []rune(articleText)
		articleText = string(runes[:maxArticleChars])
	}
	prompt := fmt.Sprintf(quizPromptTemplate, title, articleText, title)

	l.Info("Sending quiz generation request to LLM",
		zap.String("title", title),
		zap.Int("article_chars", len(articleText)),
	)

	rawOutput, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		l.Error("LLM call failed", zap.Error(err))
		return nil, domain.NewLLMServiceError(fmt.Errorf("LLM call failed: %w", err))
	}

	cleanOutput := strings.TrimSpace(codeFenceRegex.ReplaceAllString(strings.TrimSpace(rawOutput), ""))

	var generated domain.GeneratedQuiz
	if err := json.Unmarshal([]byte(cleanOutput), &generated); err != nil {
		// Soft failure: keep the raw text for diagnostics and let the
		// caller persist a record with an empty quiz
		l.Warn("LLM output was not valid JSON, returning degraded result",
			zap.Error(err),
			zap.String("title", title),
			zap.Int("output_chars", len(cleanOutput)),
		)
		return domain.NewDegradedGeneratedQuiz(title, cleanOutput), nil
	}

	generated.ApplyDefaults(title)

	l.Info("Parsed quiz from LLM output",
		zap.String("title", title),
		zap.Int("num_questions", len(generated.Quiz)),
	)

	return &generated, nil
}

var _ domain.QuizGenerationService = (*LLMQuizGenerator)(nil)
