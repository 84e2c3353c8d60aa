package service

import (
	"context"
	"encoding/json"

	"wiki-quiz/internal/domain"
	"wiki-quiz/internal/dto"
	"wiki-quiz/internal/logger"
	"wiki-quiz/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the quiz orchestration operations
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error)
	GetHistory(ctx context.Context) ([]dto.QuizHistoryItemResponse, error)
	GetQuizByID(ctx context.Context, id string) (*dto.QuizResponse, error)
}

// quizService implements QuizService
type quizService struct {
	repo      domain.QuizRepository
	scraper   domain.ArticleScraper
	generator domain.QuizGenerationService
	validator *validation.Validator
}

// NewQuizService creates a new instance of quizService
func NewQuizService(
	repo domain.QuizRepository,
	scraper domain.ArticleScraper,
	generator domain.QuizGenerationService,
) QuizService {
	return &quizService{
		repo:      repo,
		scraper:   scraper,
		generator: generator,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz implements QuizService. Input-shape and duplicate failures
// are reported before any external call; a record is persisted only after
// both scrape and generation succeed.
func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.QuizResponse, error) {
	if err := s.validator.ValidateGenerateQuizRequest(req.URL); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetQuizByURL(ctx, req.URL)
	if err != nil {
		return nil, domain.NewInternalError("Failed to check for existing quiz", err)
	}
	if existing != nil {
		logger.Get().Info("Duplicate generation request rejected",
			zap.String("url", req.URL),
			zap.String("existing_id", existing.ID),
		)
		return nil, domain.NewDuplicateResourceError(req.URL)
	}

	article, err := s.scraper.Scrape(ctx, req.URL)
	if err != nil {
		return nil, domain.NewSourceFetchError(req.URL, err)
	}

	generated, err := s.generator.GenerateQuiz(ctx, article.Content, article.Title)
	if err != nil {
		return nil, err
	}
	if generated.Degraded {
		logger.Get().Warn("Persisting quiz with degraded generator output",
			zap.String("url", req.URL),
			zap.String("title", article.Title),
		)
	}

	fullQuizData, err := json.Marshal(generated)
	if err != nil {
		return nil, domain.NewInternalError("Failed to serialize generator output", err)
	}

	quiz := domain.NewQuiz(article, generated, string(fullQuizData))
	if err := quiz.Validate(); err != nil {
		return nil, domain.NewInternalError("Generated quiz record is invalid", err)
	}
	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		return nil, domain.NewInternalError("Failed to save quiz", err)
	}

	logger.Get().Info("Quiz generated",
		zap.String("id", quiz.ID),
		zap.String("url", quiz.URL),
		zap.Int("num_questions", len(generated.Quiz)),
	)

	return toQuizResponse(quiz, generated.Quiz, generated.RelatedTopics), nil
}

// GetHistory implements QuizService. Serial numbers are 1-based and follow
// the store's enumeration order.
func (s *quizService) GetHistory(ctx context.Context) ([]dto.QuizHistoryItemResponse, error) {
	quizzes, err := s.repo.GetAllQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quiz history", err)
	}

	history := make([]dto.QuizHistoryItemResponse, 0, len(quizzes))
	for idx, quiz := range quizzes {
		history = append(history, dto.QuizHistoryItemResponse{
			SerialNo:      idx + 1,
			ID:            quiz.ID,
			URL:           quiz.URL,
			Title:         quiz.Title,
			Summary:       quiz.Summary,
			DateGenerated: quiz.DateGenerated,
		})
	}
	return history, nil
}

// GetQuizByID implements QuizService. A missing record and unreadable
// stored data are distinct failures so clients can tell absence from an
// integrity fault.
func (s *quizService) GetQuizByID(ctx context.Context, id string) (*dto.QuizResponse, error) {
	if err := s.validator.ValidateQuizID(id); err != nil {
		return nil, err
	}

	quiz, err := s.repo.GetQuizByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get quiz", err)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(id)
	}

	var generated domain.GeneratedQuiz
	if err := json.Unmarshal([]byte(quiz.FullQuizData), &generated); err != nil {
		logger.Get().Error("Stored quiz data failed to deserialize",
			zap.String("id", id),
			zap.Error(err),
		)
		return nil, domain.NewCorruptedDataError(id, err)
	}
	generated.ApplyDefaults(quiz.Title)

	return toQuizResponse(quiz, generated.Quiz, generated.RelatedTopics), nil
}

// toQuizResponse shapes a record plus its parsed quiz content into the API
// response. The top-level related_topics field is reserved and always
// present, empty unless the generator emitted one.
func toQuizResponse(quiz *domain.Quiz, questions []domain.QuizQuestion, relatedTopics []string) *dto.QuizResponse {
	quizItems := make([]dto.QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		related := q.RelatedTopics
		if related == nil {
			related = []string{}
		}
		quizItems = append(quizItems, dto.QuizQuestionResponse{
			Question:      q.Question,
			Options:       q.Options,
			Answer:        q.Answer,
			Difficulty:    q.Difficulty,
			Explanation:   q.Explanation,
			RelatedTopics: related,
		})
	}
	if relatedTopics == nil {
		relatedTopics = []string{}
	}

	return &dto.QuizResponse{
		ID:      quiz.ID,
		URL:     quiz.URL,
		Title:   quiz.Title,
		Summary: quiz.Summary,
		KeyEntities: dto.KeyEntitiesResponse{
			People:        quiz.KeyEntities.People,
			Organizations: quiz.KeyEntities.Organizations,
			Locations:     quiz.KeyEntities.Locations,
		},
		Sections:      quiz.Sections,
		Quiz:          quizItems,
		RelatedTopics: relatedTopics,
		DateGenerated: quiz.DateGenerated,
	}
}
