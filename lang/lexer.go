package lang

import (
	"bufio"
	"io"
)

// maxIdentLen bounds the identifier scan buffer. Tiny-C only ever accepts
// one-letter identifiers or one of four reserved words, so this is never a
// real limit in practice -- it only matters for producing a syntax error on
// an over-long run of lowercase letters/underscores instead of reading
// forever.
const maxIdentLen = 100

// Lexer turns a rune stream into a Token stream via a one-token lookahead
// protocol: Cur holds the current token; Next advances it.
type Lexer struct {
	r   *bufio.Reader
	ch  rune
	eof bool
	Cur Token
}

// NewLexer creates a Lexer reading from r and primes the lookahead, so that
// on return Cur already holds the first token of the input.
func NewLexer(r io.Reader) *Lexer {
	l := &Lexer{r: bufio.NewReader(r)}
	l.readRune()
	l.Next()
	return l
}

func (l *Lexer) readRune() {
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.eof = true
		l.ch = 0
		return
	}
	l.ch = r
}

// Next advances Cur to the next token, raising ErrSyntax on any lexical
// violation.
func (l *Lexer) Next() {
	for !l.eof && (l.ch == ' ' || l.ch == '\n') {
		l.readRune()
	}

	if l.eof {
		l.Cur = Token{Kind: EOI}
		return
	}

	switch l.ch {
	case '{':
		l.Cur = Token{Kind: LBrace}
		l.readRune()
		return
	case '}':
		l.Cur = Token{Kind: RBrace}
		l.readRune()
		return
	case '(':
		l.Cur = Token{Kind: LParen}
		l.readRune()
		return
	case ')':
		l.Cur = Token{Kind: RParen}
		l.readRune()
		return
	case '+':
		l.Cur = Token{Kind: Plus}
		l.readRune()
		return
	case '-':
		l.Cur = Token{Kind: Minus}
		l.readRune()
		return
	case '<':
		l.Cur = Token{Kind: Less}
		l.readRune()
		return
	case ';':
		l.Cur = Token{Kind: Semi}
		l.readRune()
		return
	case '=':
		l.Cur = Token{Kind: Equal}
		l.readRune()
		return
	}

	switch {
	case l.ch >= '0' && l.ch <= '9':
		l.lexInt()
	case l.ch >= 'a' && l.ch <= 'z':
		l.lexIdent()
	default:
		panic(ErrSyntax)
	}
}

func (l *Lexer) lexInt() {
	var v int
	for !l.eof && l.ch >= '0' && l.ch <= '9' {
		v = v*10 + int(l.ch-'0')
		l.readRune()
	}
	l.Cur = Token{Kind: Int, Val: v}
}

func (l *Lexer) lexIdent() {
	var buf [maxIdentLen]byte
	n := 0
	for !l.eof && ((l.ch >= 'a' && l.ch <= 'z') || l.ch == '_') {
		if n >= maxIdentLen {
			panic(ErrSyntax)
		}
		buf[n] = byte(l.ch)
		n++
		l.readRune()
	}
	name := string(buf[:n])

	for k, word := range reserved {
		if word == name {
			l.Cur = Token{Kind: Kind(DoSym) + Kind(k)}
			return
		}
	}

	if n == 1 {
		l.Cur = Token{Kind: Ident, Letter: buf[0]}
		return
	}
	panic(ErrSyntax)
}
