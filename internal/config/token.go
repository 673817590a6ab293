package config

// tokenKind classifies a lexical token (spec §4.E "Lexical layer").
type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokComma
	tokNewline
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokPlus
	tokEOF
)

type token struct {
	kind   tokenKind
	text   string
	line   int
	column int
}
