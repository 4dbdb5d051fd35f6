package salary

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// maxNesting bounds parenthesis and unary-operator depth.
const maxNesting = 64

// Evaluate computes an earning formula over the bound numeric variables. The grammar is
// arithmetic only: + - * /, unary signs, parentheses, decimal literals and identifiers from vars.
// Nothing outside vars is reachable.
func Evaluate(formula string, vars map[string]decimal.Decimal) (decimal.Decimal, error) {
	tokens, err := tokenize(formula)
	if err != nil {
		return decimal.Zero, err
	}
	if len(tokens) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty formula", ErrSyntax)
	}
	p := &parser{tokens: tokens, vars: vars}
	value, err := p.expr()
	if err != nil {
		return decimal.Zero, err
	}
	if p.pos < len(p.tokens) {
		return decimal.Zero, fmt.Errorf("%w: unexpected %q", ErrSyntax, p.tokens[p.pos].text)
	}
	return value, nil
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOp
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	num  decimal.Decimal
}

func tokenize(src string) ([]token, error) {
	var tokens []token
	runes := []rune(src)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{kind: tokenOp, text: string(r)})
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen, text: "("})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen, text: ")"})
			i++
		case unicode.IsDigit(r) || r == '.':
			start := i
			dots := 0
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					dots++
				}
				i++
			}
			text := string(runes[start:i])
			if dots > 1 || text == "." {
				return nil, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
			}
			if strings.HasPrefix(text, ".") {
				text = "0" + text
			}
			text = strings.TrimSuffix(text, ".")
			if i < len(runes) && (runes[i] == 'e' || runes[i] == 'E') {
				expStart := i
				i++
				if i < len(runes) && (runes[i] == '+' || runes[i] == '-') {
					i++
				}
				digits := i
				for i < len(runes) && unicode.IsDigit(runes[i]) {
					i++
				}
				if i == digits {
					return nil, fmt.Errorf("%w: malformed exponent %q", ErrSyntax, string(runes[start:i]))
				}
				text += string(runes[expStart:i])
			}
			num, err := decimal.NewFromString(text)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: text, num: num})
		case r == '_' || unicode.IsLetter(r):
			start := i
			for i < len(runes) && (runes[i] == '_' || unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(runes[start:i])})
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrSyntax, r)
		}
	}
	return tokens, nil
}

type parser struct {
	tokens []token
	pos    int
	depth  int
	vars   map[string]decimal.Decimal
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) expr() (decimal.Decimal, error) {
	left, err := p.term()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenOp || (tok.text != "+" && tok.text != "-") {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return decimal.Zero, err
		}
		if tok.text == "+" {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
}

func (p *parser) term() (decimal.Decimal, error) {
	left, err := p.unary()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenOp || (tok.text != "*" && tok.text != "/") {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return decimal.Zero, err
		}
		if tok.text == "*" {
			left = left.Mul(right)
			continue
		}
		if right.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		left = left.Div(right)
	}
}

func (p *parser) unary() (decimal.Decimal, error) {
	tok, ok := p.peek()
	if ok && tok.kind == tokenOp && (tok.text == "+" || tok.text == "-") {
		p.pos++
		if err := p.enter(); err != nil {
			return decimal.Zero, err
		}
		value, err := p.unary()
		p.depth--
		if err != nil {
			return decimal.Zero, err
		}
		if tok.text == "-" {
			return value.Neg(), nil
		}
		return value, nil
	}
	return p.primary()
}

func (p *parser) primary() (decimal.Decimal, error) {
	tok, ok := p.peek()
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unexpected end of formula", ErrSyntax)
	}
	p.pos++
	switch tok.kind {
	case tokenNumber:
		return tok.num, nil
	case tokenIdent:
		value, found := p.vars[tok.text]
		if !found {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrUnknownIdentifier, tok.text)
		}
		return value, nil
	case tokenLParen:
		if err := p.enter(); err != nil {
			return decimal.Zero, err
		}
		value, err := p.expr()
		p.depth--
		if err != nil {
			return decimal.Zero, err
		}
		closing, ok := p.peek()
		if !ok || closing.kind != tokenRParen {
			return decimal.Zero, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return value, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unexpected %q", ErrSyntax, tok.text)
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.depth > maxNesting {
		return fmt.Errorf("%w: formula nested too deeply", ErrSyntax)
	}
	return nil
}
