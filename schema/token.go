package schema

// Etymology is the word origin label the tagger attaches to a token.
type Etymology string

// Etymology labels as emitted by UniDic.
const (
	WagoEtymology  Etymology = "和" // native Japanese vocabulary
	KangoEtymology Etymology = "漢" // Sino-Japanese vocabulary
)

// Part-of-speech labels counted by the Lee formula.
const (
	VerbPOS          = "動詞"
	AuxiliaryVerbPOS = "助動詞"
)

// Token is one morpheme produced by the tagger.
// POS is required; Etymology is only meaningful when HasEtymology is set.
type Token struct {
	Surface      string    `json:"surface"`
	POS          string    `json:"pos"`
	Etymology    Etymology `json:"etymology,omitempty"`
	HasEtymology bool      `json:"has_etymology"`
}

// Valid reports whether the token carries both a surface and a part of speech.
func (t Token) Valid() bool {
	return t.Surface != "" && t.POS != ""
}
