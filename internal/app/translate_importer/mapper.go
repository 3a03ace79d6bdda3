package translate_importer

import (
	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/service/translation"
)

// MapSourceWord converts a payload file's source word to a service ingestion
// input. Assumes the file has been validated via Validate() first.
func MapSourceWord(f PayloadFile) translation.WordInput {
	w := f.SourceWord

	input := translation.WordInput{
		Text:       w.Text,
		Language:   domain.LanguageCode(w.LanguageCode),
		Phonetic:   w.Phonetic,
		SourceType: domain.SourceTypeImport,
	}
	for _, d := range w.Definitions {
		input.Definitions = append(input.Definitions, translation.WordDefinitionInput{
			Text:         d.Text,
			PartOfSpeech: domain.PartOfSpeech(d.PartOfSpeech),
			Examples:     d.Examples,
		})
	}

	return input
}

// MapImport builds the service import input from the ingested source word
// and the file's translation payload.
func MapImport(f PayloadFile, ingested *translation.IngestedWord, target domain.LanguageCode) translation.ImportInput {
	return translation.ImportInput{
		SourceWordID:   ingested.WordID,
		SourceWordText: f.SourceWord.Text,
		SourceLanguage: domain.LanguageCode(f.SourceWord.LanguageCode),
		TargetLanguage: target,
		Definitions:    ingested.Definitions,
		Payload:        f.Translation,
	}
}
