package lang

// Kind identifies the lexical class of a Token.
type Kind int

// The closed set of token kinds recognized by the Lexer.
const (
	EOI Kind = iota
	DoSym
	ElseSym
	IfSym
	WhileSym
	LBrace
	RBrace
	LParen
	RParen
	Plus
	Minus
	Less
	Semi
	Equal
	Int
	Ident
)

var kindNames = [...]string{
	EOI:      "EOI",
	DoSym:    "do",
	ElseSym:  "else",
	IfSym:    "if",
	WhileSym: "while",
	LBrace:   "{",
	RBrace:   "}",
	LParen:   "(",
	RParen:   ")",
	Plus:     "+",
	Minus:    "-",
	Less:     "<",
	Semi:     ";",
	Equal:    "=",
	Int:      "int",
	Ident:    "ident",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// reserved lists the keyword spellings in the order their Kind constants
// follow EOI. A lowercase run that matches none of these, and is longer
// than one character, is a syntax error.
var reserved = [...]string{"do", "else", "if", "while"}

// Token is a lexical unit: a Kind plus, for Int and Ident, a payload.
type Token struct {
	Kind Kind
	// Val holds the decimal value for Int tokens.
	Val int
	// Letter holds the single lowercase letter for Ident tokens.
	Letter byte
}
