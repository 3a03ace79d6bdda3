package translate_importer

import "github.com/heartmarshall/ordbog-backend/internal/provider"

// PayloadFile is the top-level JSON document for one batch-import item.
// One file per word: payloads/<word>.json
type PayloadFile struct {
	SourceWord  SourceWord                     `json:"source_word"`
	Translation provider.TranslatedWordPayload `json:"translation"`
}

// SourceWord is the dictionary word the translation belongs to.
type SourceWord struct {
	Text         string             `json:"text"`
	LanguageCode string             `json:"language_code"`
	Phonetic     string             `json:"phonetic,omitempty"`
	Definitions  []SourceDefinition `json:"definitions"`
}

// SourceDefinition is one definition of the source word. Its position in the
// slice pairs it with the translated definition at the same index.
type SourceDefinition struct {
	Text         string   `json:"text"`
	PartOfSpeech string   `json:"part_of_speech"`
	Examples     []string `json:"examples,omitempty"`
}
