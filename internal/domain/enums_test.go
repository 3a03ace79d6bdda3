package domain

import "testing"

func TestLanguageCode_IsValid(t *testing.T) {
	tests := []struct {
		code LanguageCode
		want bool
	}{
		{LanguageDanish, true},
		{LanguageEnglish, true},
		{LanguageCode("de"), false},
		{LanguageCode(""), false},
		{LanguageCode("DA"), false},
	}

	for _, tt := range tests {
		if got := tt.code.IsValid(); got != tt.want {
			t.Errorf("LanguageCode(%q).IsValid() = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestPartOfSpeech_IsValid(t *testing.T) {
	valid := []PartOfSpeech{
		PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNumeral, PartOfSpeechFixedExpression,
		PartOfSpeechPhrase, PartOfSpeechOther,
	}
	for _, p := range valid {
		if !p.IsValid() {
			t.Errorf("PartOfSpeech(%q).IsValid() = false, want true", p)
		}
	}

	invalid := []PartOfSpeech{"", "noun", "GERUND"}
	for _, p := range invalid {
		if p.IsValid() {
			t.Errorf("PartOfSpeech(%q).IsValid() = true, want false", p)
		}
	}
}

func TestRelationType_IsValid(t *testing.T) {
	valid := []RelationType{RelationTranslation, RelationVariant, RelationComposition, RelationSynonym}
	for _, r := range valid {
		if !r.IsValid() {
			t.Errorf("RelationType(%q).IsValid() = false, want true", r)
		}
	}

	if RelationType("TRANSLATION").IsValid() {
		t.Error("RelationType is case-sensitive: uppercase value must be invalid")
	}
	if RelationType("").IsValid() {
		t.Error("empty RelationType must be invalid")
	}
}

func TestSourceType_IsValid(t *testing.T) {
	valid := []SourceType{SourceTypeUser, SourceTypeImport, SourceTypeAITranslate}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("SourceType(%q).IsValid() = false, want true", s)
		}
	}

	if SourceType("llm").IsValid() {
		t.Error("unknown SourceType must be invalid")
	}
}
