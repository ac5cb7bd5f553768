package lexer

import (
	"asmdiff/internal/diag"
	"asmdiff/internal/token"
)

// scanWord reads a mnemonic, operand, symbol name, label or directive.
// Parenthesised groups such as 8(%rsp,%rax,4) stay inside one word.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.mark()
	depth := 0
	for !lx.cursor.eof() {
		b := lx.cursor.peek()
		if b == '\n' {
			break
		}
		if depth > 0 {
			if b == ')' {
				depth--
			}
			lx.cursor.bump()
			continue
		}
		if isWordStop(b) {
			break
		}
		if b == '/' && lx.cursor.at("/*") {
			break
		}
		if b == ':' && lx.atStart {
			break
		}
		if b == '(' {
			depth++
		}
		lx.cursor.bump()
	}
	sp := lx.cursor.spanFrom(start)
	word := lx.text(sp)

	if lx.atStart && lx.cursor.peek() == ':' {
		if word == "" {
			lx.cursor.bump()
			sp = lx.cursor.spanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, "label without a name")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.bump() // ':'
		sp = lx.cursor.spanFrom(start)
		kind := token.Label
		if word[0] == '.' {
			kind = token.LocalLabel
		}
		// после метки снова начало инструкции
		return token.Token{Kind: kind, Span: sp, Text: word}
	}

	kind := token.Ident
	if lx.atStart {
		if dk, ok := token.LookupDirective(word); ok {
			kind = dk
		}
	}
	lx.atStart = false
	return token.Token{Kind: kind, Span: sp, Text: word}
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.mark()
	lx.cursor.bump() // opening '"'
	for !lx.cursor.eof() {
		b := lx.cursor.peek()
		switch b {
		case '"':
			lx.cursor.bump()
			sp := lx.cursor.spanFrom(start)
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp)}
		case '\\':
			lx.cursor.bump()
			if lx.cursor.peek() == '\n' {
				continue
			}
			lx.cursor.bump()
			continue
		case '\n':
			sp := lx.cursor.spanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.bump()
	}
	sp := lx.cursor.spanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
