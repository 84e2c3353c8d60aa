package domain

import "context"

// QuizRepository defines persistence operations for quiz records.
// Lookup methods return (nil, nil) when no record matches.
type QuizRepository interface {
	SaveQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetQuizByURL(ctx context.Context, url string) (*Quiz, error)
	GetAllQuizzes(ctx context.Context) ([]*Quiz, error)
}
