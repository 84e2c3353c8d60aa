package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/repository/models"
	"wiki-quiz/internal/util"

	"github.com/jmoiron/sqlx"
)

const quizSelectColumns = `id "id",
		url "url",
		title "title",
		summary "summary",
		key_entities "key_entities",
		sections "sections",
		scraped_content "scraped_content",
		full_quiz_data "full_quiz_data",
		date_generated "date_generated"`

// QuizDatabaseAdapter implements domain.QuizRepository using sqlx.DB
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizDatabaseAdapter creates a new instance of QuizDatabaseAdapter
func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

// SaveQuiz implements domain.QuizRepository. The record id and creation
// timestamp are assigned here and written back to the domain object.
func (a *QuizDatabaseAdapter) SaveQuiz(ctx context.Context, quiz *domain.Quiz) error {
	modelQuiz := toModelQuiz(quiz)
	if modelQuiz == nil {
		return fmt.Errorf("cannot save nil quiz")
	}
	modelQuiz.ID = util.NewULID()
	modelQuiz.DateGenerated = time.Now()

	query := `INSERT INTO quizzes (
		id, url, title, summary, key_entities,
		sections, scraped_content, full_quiz_data, date_generated
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

	_, err := a.db.ExecContext(ctx, query,
		modelQuiz.ID,
		modelQuiz.URL,
		modelQuiz.Title,
		modelQuiz.Summary,
		modelQuiz.KeyEntities,
		modelQuiz.Sections,
		modelQuiz.ScrapedContent,
		modelQuiz.FullQuizData,
		modelQuiz.DateGenerated,
	)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}

	quiz.ID = modelQuiz.ID
	quiz.DateGenerated = modelQuiz.DateGenerated
	return nil
}

// GetQuizByID implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT ` + quizSelectColumns + `
	FROM quizzes
	WHERE id = :1`

	err := a.db.GetContext(ctx, &modelQuiz, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// GetQuizByURL implements domain.QuizRepository
func (a *QuizDatabaseAdapter) GetQuizByURL(ctx context.Context, url string) (*domain.Quiz, error) {
	var modelQuiz models.Quiz
	query := `SELECT ` + quizSelectColumns + `
	FROM quizzes
	WHERE url = :1`

	err := a.db.GetContext(ctx, &modelQuiz, query, url)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by URL %s: %w", url, err)
	}
	return toDomainQuiz(&modelQuiz), nil
}

// GetAllQuizzes implements domain.QuizRepository. Insertion order is kept
// stable so history serial numbers do not shuffle between calls.
func (a *QuizDatabaseAdapter) GetAllQuizzes(ctx context.Context) ([]*domain.Quiz, error) {
	var modelQuizzes []models.Quiz
	query := `SELECT ` + quizSelectColumns + `
	FROM quizzes
	ORDER BY date_generated, id`

	err := a.db.SelectContext(ctx, &modelQuizzes, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all quizzes: %w", err)
	}

	quizzes := make([]*domain.Quiz, 0, len(modelQuizzes))
	for i := range modelQuizzes {
		quizzes = append(quizzes, toDomainQuiz(&modelQuizzes[i]))
	}
	return quizzes, nil
}

var _ domain.QuizRepository = (*QuizDatabaseAdapter)(nil)
