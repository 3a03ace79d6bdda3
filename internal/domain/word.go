package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a dictionary headword, unique per (text, language_code).
// Re-import of an existing word updates PhoneticGeneral only.
type Word struct {
	ID              uuid.UUID    `db:"id"`
	Text            string       `db:"text"`
	LanguageCode    LanguageCode `db:"language_code"`
	PhoneticGeneral *string      `db:"phonetic_general"`
	Etymology       *string      `db:"etymology"`
	SourceType      SourceType   `db:"source_type"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`

	Definitions []Definition `db:"-"`
}

// WordRelation is a directed edge between two words.
// Unique per (from, to, type); edges carry no mutable payload.
type WordRelation struct {
	ID         uuid.UUID    `db:"id"`
	FromWordID uuid.UUID    `db:"from_word_id"`
	ToWordID   uuid.UUID    `db:"to_word_id"`
	Type       RelationType `db:"type"`
	CreatedAt  time.Time    `db:"created_at"`
}

// Definition is one sense of a word.
type Definition struct {
	ID           uuid.UUID    `db:"id"`
	WordID       uuid.UUID    `db:"word_id"`
	Text         string       `db:"text"`
	LanguageCode LanguageCode `db:"language_code"`
	PartOfSpeech PartOfSpeech `db:"part_of_speech"`
	SourceType   SourceType   `db:"source_type"`
	Position     int          `db:"position"`
	CreatedAt    time.Time    `db:"created_at"`

	Examples []DefinitionExample `db:"-"`
}

// DefinitionExample is a usage sentence attached to a definition.
type DefinitionExample struct {
	ID           uuid.UUID    `db:"id"`
	DefinitionID uuid.UUID    `db:"definition_id"`
	Text         string       `db:"text"`
	LanguageCode LanguageCode `db:"language_code"`
	Position     int          `db:"position"`
	CreatedAt    time.Time    `db:"created_at"`
}

// Translation is a translated string reusable across definitions and
// examples with identical text. Deduplicated by exact
// (content, language_code, source_type) match before creation.
type Translation struct {
	ID           uuid.UUID    `db:"id"`
	Content      string       `db:"content"`
	LanguageCode LanguageCode `db:"language_code"`
	SourceType   SourceType   `db:"source_type"`
	CreatedAt    time.Time    `db:"created_at"`
}
