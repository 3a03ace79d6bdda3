package domain

// LanguageCode is an ISO-639-1 language code handled by the importer.
type LanguageCode string

const (
	LanguageDanish  LanguageCode = "da"
	LanguageEnglish LanguageCode = "en"
)

func (l LanguageCode) String() string { return string(l) }

func (l LanguageCode) IsValid() bool {
	switch l {
	case LanguageDanish, LanguageEnglish:
		return true
	}
	return false
}

// PartOfSpeech represents the grammatical category of a word or definition.
type PartOfSpeech string

const (
	PartOfSpeechNoun            PartOfSpeech = "NOUN"
	PartOfSpeechVerb            PartOfSpeech = "VERB"
	PartOfSpeechAdjective       PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb          PartOfSpeech = "ADVERB"
	PartOfSpeechPronoun         PartOfSpeech = "PRONOUN"
	PartOfSpeechPreposition     PartOfSpeech = "PREPOSITION"
	PartOfSpeechConjunction     PartOfSpeech = "CONJUNCTION"
	PartOfSpeechInterjection    PartOfSpeech = "INTERJECTION"
	PartOfSpeechNumeral         PartOfSpeech = "NUMERAL"
	PartOfSpeechFixedExpression PartOfSpeech = "FIXED_EXPRESSION"
	PartOfSpeechPhrase          PartOfSpeech = "PHRASE"
	PartOfSpeechOther           PartOfSpeech = "OTHER"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechNumeral, PartOfSpeechFixedExpression,
		PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// RelationType classifies a directed edge between two words.
type RelationType string

const (
	RelationTranslation RelationType = "translation"
	RelationVariant     RelationType = "variant"
	RelationComposition RelationType = "composition"
	RelationSynonym     RelationType = "synonym"
)

func (r RelationType) String() string { return string(r) }

func (r RelationType) IsValid() bool {
	switch r {
	case RelationTranslation, RelationVariant, RelationComposition, RelationSynonym:
		return true
	}
	return false
}

// SourceType records where a row originated.
type SourceType string

const (
	SourceTypeUser        SourceType = "user"
	SourceTypeImport      SourceType = "import"
	SourceTypeAITranslate SourceType = "ai_translate"
)

func (s SourceType) String() string { return string(s) }

func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeUser, SourceTypeImport, SourceTypeAITranslate:
		return true
	}
	return false
}
