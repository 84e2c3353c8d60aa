package repository

import (
	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/repository/models"
)

// toModelQuiz converts a domain quiz to its database model
func toModelQuiz(quiz *domain.Quiz) *models.Quiz {
	if quiz == nil {
		return nil
	}
	return &models.Quiz{
		ID:             quiz.ID,
		URL:            quiz.URL,
		Title:          quiz.Title,
		Summary:        quiz.Summary,
		KeyEntities:    models.KeyEntities(quiz.KeyEntities),
		Sections:       models.StringSlice(quiz.Sections),
		ScrapedContent: quiz.ScrapedContent,
		FullQuizData:   quiz.FullQuizData,
		DateGenerated:  quiz.DateGenerated,
	}
}

// toDomainQuiz converts a database model to a domain quiz, restoring the
// documented defaults for structured fields
func toDomainQuiz(modelQuiz *models.Quiz) *domain.Quiz {
	if modelQuiz == nil {
		return nil
	}
	entities := domain.KeyEntities(modelQuiz.KeyEntities)
	entities.Normalize()
	sections := []string(modelQuiz.Sections)
	if sections == nil {
		sections = []string{}
	}
	return &domain.Quiz{
		ID:             modelQuiz.ID,
		URL:            modelQuiz.URL,
		Title:          modelQuiz.Title,
		Summary:        modelQuiz.Summary,
		KeyEntities:    entities,
		Sections:       sections,
		ScrapedContent: modelQuiz.ScrapedContent,
		FullQuizData:   modelQuiz.FullQuizData,
		DateGenerated:  modelQuiz.DateGenerated,
	}
}
