// Package algo has the character, run, token and scoring algorithms shared by
// both readability formulas.
package algo

import (
	"unicode/utf8"

	"github.com/huangsam/yomu/schema"
)

// codeRange is an inclusive range of code points.
type codeRange struct {
	lo, hi rune
}

// classRule maps a set of code point ranges to a category.
type classRule struct {
	category schema.CharCategory
	ranges   []codeRange
}

// classRules is evaluated top to bottom and the first match wins.
// The order is significant: punctuation is checked before the script blocks.
var classRules = []classRule{
	{schema.CategoryTooten, []codeRange{{0x3001, 0x3001}}},          // 、
	{schema.CategoryKuten, []codeRange{{0x3002, 0x3002}}},           // 。
	{schema.CategoryEndQuote, []codeRange{{0x300D, 0x300D}}},        // 」
	{schema.CategoryExclamationMark, []codeRange{{0xFF01, 0xFF01}}}, // ！
	{schema.CategoryQuestionMark, []codeRange{{0xFF1F, 0xFF1F}}},    // ？
	{schema.CategoryAlphabet, []codeRange{
		{0x0041, 0x005A}, // basic latin uppercase
		{0x0061, 0x007A}, // basic latin lowercase
		{0xFF21, 0xFF3A}, // fullwidth uppercase
		{0xFF42, 0xFF59}, // fullwidth lowercase, ａ and ｚ excluded
	}},
	{schema.CategoryHiragana, []codeRange{{0x3040, 0x3096}}},
	{schema.CategoryKatakana, []codeRange{
		{0x30A0, 0x30FA}, // fullwidth, middle dot U+30FB excluded
		{0x30FC, 0x30FF},
		{0xFF66, 0xFF9F}, // halfwidth
	}},
	{schema.CategoryDigit, []codeRange{
		{0x0030, 0x0039},
		{0xFF10, 0xFF19},
	}},
	{schema.CategoryKanji, []codeRange{
		{0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
		{0x4E00, 0x9FFF},   // CJK Unified Ideographs
		{0xF900, 0xFAFF},   // CJK Compatibility Ideographs
		{0x20000, 0x2A6DF}, // Extension B
		{0x2A700, 0x2B73F}, // Extension C
		{0x2B740, 0x2B81F}, // Extension D
		{0x2F800, 0x2FA1F}, // CJK Compatibility Ideographs Supplement
	}},
}

// Classify returns the category of a single code point.
// Code points matching no rule are schema.CategoryOther.
func Classify(r rune) schema.CharCategory {
	for _, rule := range classRules {
		for _, cr := range rule.ranges {
			if r >= cr.lo && r <= cr.hi {
				return rule.category
			}
		}
	}
	return schema.CategoryOther
}

// ClassifyString classifies the first code point of s.
// The empty string is schema.CategoryOther.
func ClassifyString(s string) schema.CharCategory {
	if s == "" {
		return schema.CategoryOther
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Classify(r)
}
