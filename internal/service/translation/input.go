package translation

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
)

// ImportInput is one translation import: the already-persisted source word
// (id plus its definitions and examples, so join rows can be attached) and
// the validated payload returned by the translation service.
type ImportInput struct {
	SourceWordID   uuid.UUID
	SourceWordText string
	SourceLanguage domain.LanguageCode
	TargetLanguage domain.LanguageCode
	Definitions    []SourceDefinition

	Payload provider.TranslatedWordPayload
}

// SourceDefinition is a persisted definition of the source word.
// Order must match the order the definitions were sent to the translation
// service in: translated definitions are paired back by index.
type SourceDefinition struct {
	ID       uuid.UUID
	Text     string
	Examples []SourceExample
}

// SourceExample is a persisted example sentence of a source definition.
type SourceExample struct {
	ID   uuid.UUID
	Text string
}

// Validate checks the structural preconditions of the import. The payload
// itself is assumed to have passed whitelist validation before this point.
func (in ImportInput) Validate() error {
	var errs []domain.FieldError

	if in.SourceWordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "source_word_id", Message: "is required"})
	}
	if in.SourceWordText == "" {
		errs = append(errs, domain.FieldError{Field: "source_word_text", Message: "is required"})
	}
	if !in.SourceLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "unknown language code"})
	}
	if !in.TargetLanguage.IsValid() {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "unknown language code"})
	}
	if in.Payload.EnglishWordData.Word == "" {
		errs = append(errs, domain.FieldError{Field: "payload.english_word_data.word", Message: "is required"})
	}
	for i, def := range in.Definitions {
		if def.ID == uuid.Nil {
			errs = append(errs, domain.FieldError{
				Field:   "definitions",
				Message: "definition at index " + strconv.Itoa(i) + " has no id",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
