package crontime

// parser is the internal parser state for one field.
type parser struct {
	tokens []Token
	pos    int
	input  string
	spec   *FieldSpec
}

// parseClauses parses a field whose names have already been resolved. An
// empty or all-blank field has no clauses and selects nothing.
func parseClauses(spec *FieldSpec, input string) ([]Clause, error) {
	p := &parser{tokens: Tokenize(input), input: input, spec: spec}

	p.skipSpace()
	if p.peek() == nil {
		return nil, nil
	}

	var clauses []Clause
	for {
		clause, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, clause)

		if p.peek() == nil {
			return clauses, nil
		}
		p.advance() // ','
	}
}

func (p *parser) peek() *Token {
	if p.pos < len(p.tokens) {
		return &p.tokens[p.pos]
	}
	return nil
}

func (p *parser) advance() *Token {
	tok := p.peek()
	if tok != nil {
		p.pos++
	}
	return tok
}

func (p *parser) skipSpace() {
	for tok := p.peek(); tok != nil && tok.Kind == TokenSpace; tok = p.peek() {
		p.pos++
	}
}

func (p *parser) error(span Span) error {
	return ClauseError(p.spec.name, p.input[span.Start:span.End], span, p.input)
}

// parseClause consumes tokens up to the next comma or the end of input.
func (p *parser) parseClause() (Clause, error) {
	start := p.pos
	for tok := p.peek(); tok != nil && tok.Kind != TokenComma; tok = p.peek() {
		p.pos++
	}
	toks := trimSpace(p.tokens[start:p.pos])
	span := p.spanOf(toks, start)

	if len(toks) == 0 {
		return Clause{}, p.error(span)
	}

	rangeToks, stepToks, hasStep := splitStep(toks)
	clause, ok := matchRange(trimSpace(rangeToks))
	if !ok {
		return Clause{}, p.error(span)
	}

	if hasStep {
		stepToks = trimSpace(stepToks)
		if indexKind(stepToks, TokenSlash) >= 0 {
			return Clause{}, p.error(span)
		}
		// A step that is not a plain number is ignored.
		if len(stepToks) == 1 && stepToks[0].Kind == TokenNumber {
			if stepToks[0].NumberVal == 0 {
				return Clause{}, p.error(span)
			}
			clause = clause.WithStep(stepToks[0].NumberVal)
		}
	}

	clause.Span = span
	return clause, nil
}

// matchRange recognizes "*", "N" and "N-M".
func matchRange(toks []Token) (Clause, bool) {
	switch {
	case len(toks) == 1 && toks[0].Kind == TokenStar:
		return NewWildcard(), true
	case len(toks) == 1 && toks[0].Kind == TokenNumber:
		return NewSingle(toks[0].NumberVal), true
	case len(toks) == 3 &&
		toks[0].Kind == TokenNumber &&
		toks[1].Kind == TokenDash &&
		toks[2].Kind == TokenNumber:
		return NewRange(toks[0].NumberVal, toks[2].NumberVal), true
	default:
		return Clause{}, false
	}
}

// spanOf covers toks, or is the empty span at the position of token index
// at when toks is empty.
func (p *parser) spanOf(toks []Token, at int) Span {
	if len(toks) > 0 {
		return Span{toks[0].Span.Start, toks[len(toks)-1].Span.End}
	}
	if at < len(p.tokens) {
		pos := p.tokens[at].Span.Start
		return Span{pos, pos}
	}
	return Span{len(p.input), len(p.input)}
}

func splitStep(toks []Token) (rangeToks, stepToks []Token, hasStep bool) {
	i := indexKind(toks, TokenSlash)
	if i < 0 {
		return toks, nil, false
	}
	return toks[:i], toks[i+1:], true
}

func indexKind(toks []Token, kind TokenKind) int {
	for i, tok := range toks {
		if tok.Kind == kind {
			return i
		}
	}
	return -1
}

func trimSpace(toks []Token) []Token {
	for len(toks) > 0 && toks[0].Kind == TokenSpace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Kind == TokenSpace {
		toks = toks[:len(toks)-1]
	}
	return toks
}
