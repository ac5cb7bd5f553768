package lexer

import (
	"asmdiff/internal/diag"
	"asmdiff/internal/token"
)

// scanLineComment reads '#' up to, not including, the newline.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.mark()
	lx.cursor.skipWhile(func(b byte) bool { return b != '\n' })
	sp := lx.cursor.spanFrom(start)
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}

// scanBlockComment reads /* ... */; it may span lines.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.mark()
	lx.cursor.bump()
	lx.cursor.bump()
	for !lx.cursor.eof() {
		if lx.cursor.at("*/") {
			lx.cursor.bump()
			lx.cursor.bump()
			sp := lx.cursor.spanFrom(start)
			return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
		}
		if lx.cursor.bump() == '\n' {
			lx.line++
		}
	}
	sp := lx.cursor.spanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.text(sp)}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f' || b == '\v'
}

func isControl(b byte) bool {
	return b < 0x20 && b != '\n' && !isSpace(b)
}

func isWordStop(b byte) bool {
	switch b {
	case ',', ';', '#', '"':
		return true
	}
	return isSpace(b) || isControl(b)
}
