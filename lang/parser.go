package lang

// Parser builds an AST from the Token stream exposed by a Lexer, one token
// of lookahead at a time. Every production consumes exactly the tokens of
// its grammar rule and leaves the next unconsumed token in lex.Cur.
type Parser struct {
	lex *Lexer
}

// NewParser returns a Parser drawing tokens from lex. lex must already have
// been primed (NewLexer does this).
func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

// expect consumes the current token if it has kind k, else raises
// ErrSyntax.
func (p *Parser) expect(k Kind) {
	if p.lex.Cur.Kind != k {
		syntaxError()
	}
	p.lex.Next()
}

// Program parses the "program ::= statement EOI" rule and returns the Prog
// root of the AST.
func (p *Parser) Program() *Node {
	root := newNode(Prog)
	root.Child1 = p.statement()
	if p.lex.Cur.Kind != EOI {
		syntaxError()
	}
	return root
}

// term ::= ident | int | paren
func (p *Parser) term() *Node {
	switch p.lex.Cur.Kind {
	case Ident:
		n := newNode(Var)
		n.Value = int(p.lex.Cur.Letter - 'a')
		p.lex.Next()
		return n
	case Int:
		n := newNode(Cst)
		n.Value = p.lex.Cur.Val
		p.lex.Next()
		return n
	default:
		return p.paren()
	}
}

// sum ::= term (("+" | "-") term)*
func (p *Parser) sum() *Node {
	n := p.term()
	for p.lex.Cur.Kind == Plus || p.lex.Cur.Kind == Minus {
		kind := Add
		if p.lex.Cur.Kind == Minus {
			kind = Sub
		}
		p.lex.Next()
		parent := newNode(kind)
		parent.Child1 = n
		parent.Child2 = p.term()
		n = parent
	}
	return n
}

// comparison ::= sum ("<" sum)?
func (p *Parser) comparison() *Node {
	left := p.sum()
	if p.lex.Cur.Kind == Less {
		p.lex.Next()
		n := newNode(Lt)
		n.Child1 = left
		n.Child2 = p.sum()
		return n
	}
	return left
}

// expression ::= comparison | ident "=" expression
//
// The assignment alternative is only taken when comparison() returns a bare
// Var node and the next token is "=" -- this is what makes "(a+1) = 3"
// illegal while "a = b = 3" is legal.
func (p *Parser) expression() *Node {
	x := p.comparison()
	if x.Kind == Var && p.lex.Cur.Kind == Equal {
		p.lex.Next()
		n := newNode(Set)
		n.Child1 = x
		n.Child2 = p.expression()
		return n
	}
	return x
}

// paren ::= "(" expression ")"
func (p *Parser) paren() *Node {
	p.expect(LParen)
	n := p.expression()
	p.expect(RParen)
	return n
}

// statement parses any one of the six statement alternatives.
func (p *Parser) statement() *Node {
	switch p.lex.Cur.Kind {
	case IfSym:
		p.lex.Next()
		n := newNode(If1)
		n.Child1 = p.paren()
		n.Child2 = p.statement()
		if p.lex.Cur.Kind == ElseSym {
			n.Kind = If2
			p.lex.Next()
			n.Child3 = p.statement()
		}
		return n

	case WhileSym:
		p.lex.Next()
		n := newNode(While)
		n.Child1 = p.paren()
		n.Child2 = p.statement()
		return n

	case DoSym:
		p.lex.Next()
		n := newNode(Do)
		n.Child1 = p.statement()
		p.expect(WhileSym)
		n.Child2 = p.paren()
		p.expect(Semi)
		return n

	case Semi:
		p.lex.Next()
		return newNode(Empty)

	case LBrace:
		p.lex.Next()
		n := newNode(Empty)
		for p.lex.Cur.Kind != RBrace {
			prev := n
			n = newNode(Seq)
			n.Child1 = prev
			n.Child2 = p.statement()
		}
		p.lex.Next()
		return n

	default:
		n := newNode(Expr)
		n.Child1 = p.expression()
		p.expect(Semi)
		return n
	}
}
