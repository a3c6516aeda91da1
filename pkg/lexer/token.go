package lexer

import "fmt"

// Kind is a type-checked token classification. A plain int const would let
// any int flow into a Kind field unchecked, so (per the project's
// stringly-typed-kinds design note) each kind is its own named value of a
// distinct struct type instead of a bare iota.
type Kind struct{ k int }

var (
	KindWord      = Kind{0} // bare identifier/mnemonic/number-looking word
	KindLabel     = Kind{1} // identifier immediately followed by ':'
	KindDirective = Kind{2} // '.'-prefixed word (.data, .string, .entry, .extern)
	KindString    = Kind{3} // double-quoted literal, quotes retained
	KindComma     = Kind{4}
	KindComment   = Kind{5}
	KindEOL       = Kind{6}
)

var kindNames = map[Kind]string{
	KindWord:      "Word",
	KindLabel:     "Label",
	KindDirective: "Directive",
	KindString:    "String",
	KindComma:     "Comma",
	KindComment:   "Comment",
	KindEOL:       "EOL",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Invalid"
}

// Token is one lexeme produced by scanning a single source line.
type Token struct {
	Text   string
	Kind   Kind
	Column int // 1-based column of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("{%s %q@%d}", t.Kind, t.Text, t.Column)
}
