package translate_importer

import (
	"fmt"

	"github.com/heartmarshall/ordbog-backend/internal/domain"
	"github.com/heartmarshall/ordbog-backend/internal/provider"
)

// Validate checks every enumerated field of a payload file against the
// domain whitelists. It fails on the first offense, naming the word and the
// offending field: downstream upserts assume validated shapes, so nothing
// may be written after a validation failure.
func Validate(f PayloadFile) error {
	w := f.SourceWord
	if w.Text == "" {
		return fmt.Errorf("source word text is empty")
	}
	if !domain.LanguageCode(w.LanguageCode).IsValid() {
		return fmt.Errorf("word %q: invalid language code %q", w.Text, w.LanguageCode)
	}
	if len(w.Definitions) == 0 {
		return fmt.Errorf("word %q has no definitions", w.Text)
	}
	for i, d := range w.Definitions {
		if d.Text == "" {
			return fmt.Errorf("word %q: definition %d has empty text", w.Text, i)
		}
		if !domain.PartOfSpeech(d.PartOfSpeech).IsValid() {
			return fmt.Errorf("word %q: definition %d has invalid part of speech %q", w.Text, i, d.PartOfSpeech)
		}
	}

	eng := f.Translation.EnglishWordData
	if eng.Word == "" {
		return fmt.Errorf("word %q: translated word is empty", w.Text)
	}
	if eng.LanguageCode != "" && !domain.LanguageCode(eng.LanguageCode).IsValid() {
		return fmt.Errorf("word %q: invalid translated language code %q", w.Text, eng.LanguageCode)
	}
	for i, d := range eng.Definitions {
		if d.PartOfSpeech != "" && !domain.PartOfSpeech(d.PartOfSpeech).IsValid() {
			return fmt.Errorf("word %q: translated definition %d has invalid part of speech %q", w.Text, i, d.PartOfSpeech)
		}
	}

	if f.Translation.DanishDictionary != nil {
		for i, v := range f.Translation.DanishDictionary.Variants {
			if err := validateVariant(w.Text, i, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateVariant(wordText string, index int, v provider.Variant) error {
	if v.Word == "" {
		return fmt.Errorf("word %q: variant %d has empty word", wordText, index)
	}
	if v.PartOfSpeech != "" && !domain.PartOfSpeech(v.PartOfSpeech).IsValid() {
		return fmt.Errorf("word %q: variant %q has invalid part of speech %q", wordText, v.Word, v.PartOfSpeech)
	}
	for i, vd := range v.Definitions {
		if vd.Text == "" {
			return fmt.Errorf("word %q: variant %q definition %d has empty text", wordText, v.Word, i)
		}
	}
	for i, fe := range v.FixedExpressions {
		if fe.Text == "" {
			return fmt.Errorf("word %q: variant %q fixed expression %d has empty text", wordText, v.Word, i)
		}
	}
	return nil
}
