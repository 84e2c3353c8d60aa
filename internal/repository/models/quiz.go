package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wiki-quiz/internal/domain"
)

// StringSlice stores a string list as a JSON text column
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// KeyEntities stores the named-entity lists as a JSON text column.
// An empty or NULL column scans to three empty lists.
type KeyEntities domain.KeyEntities

// Value implements the driver.Valuer interface
func (k KeyEntities) Value() (driver.Value, error) {
	entities := domain.KeyEntities(k)
	entities.Normalize()
	jsonData, err := json.Marshal(entities)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (k *KeyEntities) Scan(value interface{}) error {
	if value == nil {
		*k = KeyEntities(domain.NewKeyEntities())
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("KeyEntities Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*k = KeyEntities(domain.NewKeyEntities())
		return nil
	}
	if err := json.Unmarshal(bytesToParse, k); err != nil {
		return err
	}
	(*domain.KeyEntities)(k).Normalize()
	return nil
}

// Quiz is the database model of one generated quiz record
type Quiz struct {
	ID             string      `db:"id"`
	URL            string      `db:"url"`
	Title          string      `db:"title"`
	Summary        string      `db:"summary"`
	KeyEntities    KeyEntities `db:"key_entities"`
	Sections       StringSlice `db:"sections"`
	ScrapedContent string      `db:"scraped_content"`
	FullQuizData   string      `db:"full_quiz_data"`
	DateGenerated  time.Time   `db:"date_generated"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
