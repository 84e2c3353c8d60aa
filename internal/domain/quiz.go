package domain

import (
	"time"
)

// Difficulty levels a generated question may carry
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// WikipediaURLPrefix is the only accepted source pattern for quiz generation
const WikipediaURLPrefix = "https://en.wikipedia.org/wiki/"

// Article is the scraper's view of a Wikipedia page
type Article struct {
	URL     string
	Title   string
	Content string
}

// KeyEntities groups the named entities extracted from an article.
// All three lists are always present, empty when nothing was extracted.
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// NewKeyEntities returns an empty but fully initialized KeyEntities value
func NewKeyEntities() KeyEntities {
	return KeyEntities{
		People:        []string{},
		Organizations: []string{},
		Locations:     []string{},
	}
}

// Normalize replaces nil lists with empty ones
func (k *KeyEntities) Normalize() {
	if k.People == nil {
		k.People = []string{}
	}
	if k.Organizations == nil {
		k.Organizations = []string{}
	}
	if k.Locations == nil {
		k.Locations = []string{}
	}
}

// QuizQuestion is one generated question. It lives inside the serialized
// generator output and is never persisted as a row of its own.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answer        string   `json:"answer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
	RelatedTopics []string `json:"related_topics"`
}

// GeneratedQuiz is the normalized generator output. When the model reply
// could not be decoded, Degraded is set and RawOutput carries the unparsed
// text; every structured field then holds its documented default, so a
// degraded result is still safe to persist.
type GeneratedQuiz struct {
	Title         string         `json:"title"`
	Summary       string         `json:"summary"`
	KeyEntities   KeyEntities    `json:"key_entities"`
	Sections      []string       `json:"sections"`
	Quiz          []QuizQuestion `json:"quiz"`
	RelatedTopics []string       `json:"related_topics,omitempty"`
	RawOutput     string         `json:"raw_output,omitempty"`
	Degraded      bool           `json:"-"`
}

// NewDegradedGeneratedQuiz builds the soft-failure result for an
// unparseable model reply
func NewDegradedGeneratedQuiz(title, rawOutput string) *GeneratedQuiz {
	return &GeneratedQuiz{
		Title:       title,
		Summary:     "",
		KeyEntities: NewKeyEntities(),
		Sections:    []string{},
		Quiz:        []QuizQuestion{},
		RawOutput:   rawOutput,
		Degraded:    true,
	}
}

// ApplyDefaults fills any structured field the model omitted with its
// documented default. Defaults are structural placeholders only; no quiz
// content is ever fabricated here.
func (g *GeneratedQuiz) ApplyDefaults(title string) {
	if g.Title == "" {
		g.Title = title
	}
	g.KeyEntities.Normalize()
	if g.Sections == nil {
		g.Sections = []string{}
	}
	if g.Quiz == nil {
		g.Quiz = []QuizQuestion{}
	}
}

// Quiz is the persisted record of one generated quiz for one source URL.
// Records are created once and never mutated.
type Quiz struct {
	ID             string
	URL            string
	Title          string
	Summary        string
	KeyEntities    KeyEntities
	Sections       []string
	ScrapedContent string
	FullQuizData   string
	DateGenerated  time.Time
}

// NewQuiz assembles a record from a scraped article and its generator
// output. ID and DateGenerated are assigned by the repository at insert.
func NewQuiz(article *Article, generated *GeneratedQuiz, fullQuizData string) *Quiz {
	return &Quiz{
		URL:            article.URL,
		Title:          article.Title,
		Summary:        generated.Summary,
		KeyEntities:    generated.KeyEntities,
		Sections:       generated.Sections,
		ScrapedContent: article.Content,
		FullQuizData:   fullQuizData,
	}
}

// Validate checks record invariants before persistence
func (q *Quiz) Validate() error {
	if q.URL == "" {
		return NewMissingFieldError("url")
	}
	if q.Title == "" {
		return NewMissingFieldError("title")
	}
	return nil
}
