package domain

import "context"

// QuizGenerationService turns article text into a structured quiz via an
// LLM. A transport or auth failure is returned as an error; an unparseable
// model reply is not an error and yields a degraded GeneratedQuiz instead.
type QuizGenerationService interface {
	GenerateQuiz(ctx context.Context, articleText string, title string) (*GeneratedQuiz, error)
}
