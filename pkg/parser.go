package arith

var binaryOps = map[TokenType]BinaryOp{
	TokenPlus:     BinaryAddition,
	TokenMinus:    BinarySubtraction,
	TokenMultiply: BinaryMultiplication,
	TokenDivide:   BinaryDivision,
}

var unaryOps = map[TokenType]UnaryOp{
	TokenPlus:  UnaryPositive,
	TokenMinus: UnaryNegative,
}

// Parser turns a token sequence into a tree. A Parser is single use.
//
//	expression = term { ("+" | "-") term }
//	term       = factor { ("*" | "/") factor }
//	factor     = Number | "(" expression ")" | ("+" | "-") factor
type Parser struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

func NewParser(tokens []Token) *Parser {
	return NewParserWithConfig(tokens, DefaultConfig())
}

func NewParserWithConfig(tokens []Token, cfg Config) *Parser {
	return &Parser{
		tokens:   tokens,
		maxDepth: cfg.maxDepth(),
	}
}

// Parse parses tokens with the default configuration.
func Parse(tokens []Token) (Node, error) {
	return NewParser(tokens).Parse()
}

// Parse consumes every token and returns the single expression they form.
func (p *Parser) Parse() (Node, error) {
	node, err := p.expression()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok != nil {
		return nil, p.errorf(ErrUnexpectedToken, tok)
	}

	return node, nil
}

func (p *Parser) peek() *Token {
	if p.pos >= len(p.tokens) {
		return nil
	}

	return &p.tokens[p.pos]
}

func (p *Parser) next() *Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}

	return tok
}

func (p *Parser) check(types ...TokenType) bool {
	tok := p.peek()
	if tok == nil {
		return false
	}

	for _, typ := range types {
		if tok.Typ == typ {
			return true
		}
	}

	return false
}

func (p *Parser) errorf(kind error, tok *Token) error {
	if tok == nil && kind == ErrUnexpectedToken {
		kind = ErrUnexpectedEndOfInput
	}

	return &ParseError{
		Kind:  kind,
		Token: tok,
	}
}

func (p *Parser) expression() (Node, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.check(TokenPlus, TokenMinus) {
		// Fold chained operands to the left: 10 - 4 - 3 is (10 - 4) - 3
		op := p.next()

		rhs, err := p.term()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: binaryOps[op.Typ],
			Left:      lhs,
			Right:     rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) term() (Node, error) {
	lhs, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.check(TokenMultiply, TokenDivide) {
		op := p.next()

		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryExpr{
			Operation: binaryOps[op.Typ],
			Left:      lhs,
			Right:     rhs,
		}
	}

	return lhs, nil
}

func (p *Parser) factor() (Node, error) {
	p.depth++
	defer func() { p.depth-- }()

	tok := p.next()
	if tok == nil {
		return nil, p.errorf(ErrUnexpectedEndOfInput, nil)
	}

	if p.depth > p.maxDepth {
		return nil, p.errorf(ErrNestingTooDeep, tok)
	}

	switch tok.Typ {
	case TokenNumber:
		return &NumberExpr{Value: tok.Num}, nil
	case TokenOpenParentheses:
		return p.parenthesisedExpression(tok)
	case TokenPlus, TokenMinus:
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{
			Operation: unaryOps[tok.Typ],
			Operand:   operand,
		}, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken, tok)
	}
}

func (p *Parser) parenthesisedExpression(open *Token) (Node, error) {
	exp, err := p.expression()
	if err != nil {
		return nil, err
	}

	if !p.check(TokenCloseParentheses) {
		// Point at the opening parenthesis when the input ran out
		if tok := p.peek(); tok != nil {
			return nil, p.errorf(ErrUnmatchedParenthesis, tok)
		}

		return nil, p.errorf(ErrUnmatchedParenthesis, open)
	}

	p.next() // Skip )

	return exp, nil
}
