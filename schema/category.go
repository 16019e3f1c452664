package schema

// CharCategory is the semantic category of a single character.
type CharCategory int

// All character categories. The set is closed.
const (
	CategoryOther CharCategory = iota
	CategoryAlphabet
	CategoryHiragana
	CategoryKatakana
	CategoryDigit
	CategoryKanji
	CategoryEndQuote
	CategoryTooten
	CategoryKuten
	CategoryExclamationMark
	CategoryQuestionMark
)

var categoryNames = [...]string{
	CategoryOther:           "OTHER",
	CategoryAlphabet:        "ALPHABET",
	CategoryHiragana:        "HIRAGANA",
	CategoryKatakana:        "KATAKANA",
	CategoryDigit:           "DIGIT",
	CategoryKanji:           "KANJI",
	CategoryEndQuote:        "END QUOTE",
	CategoryTooten:          "TOOTEN",
	CategoryKuten:           "KUTEN",
	CategoryExclamationMark: "EXCLAMATION MARK",
	CategoryQuestionMark:    "QUESTION MARK",
}

// String returns the display label of the category.
func (c CharCategory) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryOther]
	}
	return categoryNames[c]
}

// LetterCategories are the categories that count as letters for run and
// sentence lengths. The order is fixed and used for iteration.
var LetterCategories = []CharCategory{
	CategoryAlphabet,
	CategoryHiragana,
	CategoryKanji,
	CategoryKatakana,
}

// SentenceEndingCategories are the categories that close a sentence.
// Tooten is a comma and never ends a sentence.
var SentenceEndingCategories = []CharCategory{
	CategoryKuten,
	CategoryEndQuote,
	CategoryExclamationMark,
	CategoryQuestionMark,
}

// IsLetter reports whether c is one of the letter categories.
func (c CharCategory) IsLetter() bool {
	switch c {
	case CategoryAlphabet, CategoryHiragana, CategoryKanji, CategoryKatakana:
		return true
	default:
		return false
	}
}

// IsSentenceEnding reports whether c closes a sentence.
func (c CharCategory) IsSentenceEnding() bool {
	switch c {
	case CategoryKuten, CategoryEndQuote, CategoryExclamationMark, CategoryQuestionMark:
		return true
	default:
		return false
	}
}
