// Package provider defines the structured request/response types exchanged
// with external dictionary and translation services.
package provider

import "github.com/google/uuid"

// TranslationRequest is the input sent to the translation service for one
// source word: the word itself plus its persisted definitions and examples,
// so the response can be attached back to existing rows.
type TranslationRequest struct {
	WordID       uuid.UUID           `json:"word_id"`
	WordText     string              `json:"word_text"`
	LanguageCode string              `json:"language_code"`
	Phonetic     string              `json:"phonetic,omitempty"`
	Definitions  []RequestDefinition `json:"definitions"`
	Stems        []string            `json:"stems,omitempty"`
	RelatedWords []string            `json:"related_words,omitempty"`
	TargetLang   string              `json:"target_language"`
}

// RequestDefinition carries one persisted definition and its examples.
type RequestDefinition struct {
	ID       uuid.UUID        `json:"id"`
	Text     string           `json:"text"`
	Examples []RequestExample `json:"examples,omitempty"`
}

// RequestExample carries one persisted example sentence.
type RequestExample struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

// TranslatedWordPayload is the translation-service response for one word.
// It is treated as untrusted input and must pass validation before any
// database write.
type TranslatedWordPayload struct {
	EnglishWordData  EnglishWordData   `json:"english_word_data"`
	DanishDictionary *DanishDictionary `json:"translation_word_for_danish_dictionary,omitempty"`
}

// EnglishWordData is the translated counterpart of the source word.
// Definitions align positionally with TranslationRequest.Definitions.
type EnglishWordData struct {
	Word         string                 `json:"word"`
	LanguageCode string                 `json:"language_code"`
	Phonetic     string                 `json:"phonetic,omitempty"`
	Definitions  []TranslatedDefinition `json:"definitions"`
}

// TranslatedDefinition is the translated string for one source definition.
// ExampleTranslations align positionally with the source definition's
// examples; the arrays may legitimately differ in length.
type TranslatedDefinition struct {
	Translation         string   `json:"translation"`
	PartOfSpeech        string   `json:"part_of_speech,omitempty"`
	ExampleTranslations []string `json:"example_translations,omitempty"`
}

// DanishDictionary is the optional variant tree bundled with a response:
// secondary word senses or inflected forms, each with its own definitions
// and fixed expressions.
type DanishDictionary struct {
	Variants []Variant `json:"variants"`
}

// Variant is one secondary dictionary word bundled with the response.
type Variant struct {
	Word             string              `json:"word"`
	Phonetic         string              `json:"phonetic,omitempty"`
	PartOfSpeech     string              `json:"part_of_speech"`
	Definitions      []VariantDefinition `json:"definitions"`
	FixedExpressions []FixedExpression   `json:"fixed_expressions,omitempty"`
}

// VariantDefinition is a variant's own definition with its translation and
// example sentences. Each example carries its translation inline.
type VariantDefinition struct {
	Text        string           `json:"text"`
	Translation string           `json:"translation"`
	Examples    []VariantExample `json:"examples,omitempty"`
}

// VariantExample is one example sentence of a variant definition.
type VariantExample struct {
	Text        string `json:"text"`
	Translation string `json:"translation,omitempty"`
}

// FixedExpression is an idiomatic phrase bundled with a variant. It is
// persisted as its own word+definition and later re-located by exact text.
type FixedExpression struct {
	Text        string `json:"text"`
	Definition  string `json:"definition"`
	Translation string `json:"translation"`
}
