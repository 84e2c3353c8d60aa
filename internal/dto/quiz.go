package dto

import "time"

// GenerateQuizRequest is the request body for quiz generation
// @Description Request body for generating a quiz from a Wikipedia URL
type GenerateQuizRequest struct {
	URL string `json:"url"`
}

// KeyEntitiesResponse groups the extracted named entities
type KeyEntitiesResponse struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// QuizQuestionResponse is one question of a generated quiz
type QuizQuestionResponse struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	Answer        string   `json:"answer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation"`
	RelatedTopics []string `json:"related_topics"`
}

// QuizResponse is the full quiz in the API response
// @Description Generated quiz with article metadata
type QuizResponse struct {
	ID            string                 `json:"id"`
	URL           string                 `json:"url"`
	Title         string                 `json:"title"`
	Summary       string                 `json:"summary"`
	KeyEntities   KeyEntitiesResponse    `json:"key_entities"`
	Sections      []string               `json:"sections"`
	Quiz          []QuizQuestionResponse `json:"quiz"`
	RelatedTopics []string               `json:"related_topics"`
	DateGenerated time.Time              `json:"date_generated"`
}

// QuizHistoryItemResponse is one entry of the history listing.
// SerialNo is assigned by enumeration order and not stored.
type QuizHistoryItemResponse struct {
	SerialNo      int       `json:"serial_no"`
	ID            string    `json:"id"`
	URL           string    `json:"url"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	DateGenerated time.Time `json:"date_generated"`
}
