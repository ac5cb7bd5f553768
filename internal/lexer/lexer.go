package lexer

import (
	"asmdiff/internal/diag"
	"asmdiff/internal/source"
	"asmdiff/internal/token"
)

// Lexer splits assembler source into tokens. It tracks whether the next word
// starts a statement, since only a statement-initial word can be a label or
// a directive.
type Lexer struct {
	file    *source.File
	cursor  cursor
	opts    Options
	look    *token.Token // 1 элементный буфер для токена
	line    uint32
	atStart bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  newCursor(file),
		opts:    opts,
		line:    1,
		atStart: true,
	}
}

// Next returns the next token with its Leading whitespace attached.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	leading := lx.skipSpace()
	if lx.cursor.eof() {
		return token.Token{
			Kind:    token.EOF,
			Span:    lx.emptySpan(),
			Leading: leading,
			Line:    lx.line,
		}
	}

	line := lx.line
	var tok token.Token
	ch := lx.cursor.peek()
	switch {
	case ch == '\n':
		tok = lx.single(token.Newline)
		lx.line++
		lx.atStart = true

	case ch == ';':
		tok = lx.single(token.Separator)
		lx.atStart = true

	case ch == ',':
		tok = lx.single(token.Comma)

	case ch == '#':
		tok = lx.scanLineComment()

	case ch == '/' && lx.cursor.at("/*"):
		tok = lx.scanBlockComment()

	case ch == '"':
		tok = lx.scanString()
		lx.atStart = false

	case isControl(ch):
		mark := lx.cursor.mark()
		lx.cursor.bump()
		sp := lx.cursor.spanFrom(mark)
		lx.errLex(diag.LexUnknownChar, sp, "unexpected control character")
		tok = token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}

	default:
		tok = lx.scanWord()
	}

	tok.Leading = leading
	tok.Line = line
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) single(kind token.Kind) token.Token {
	mark := lx.cursor.mark()
	lx.cursor.bump()
	sp := lx.cursor.spanFrom(mark)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) skipSpace() string {
	mark := lx.cursor.mark()
	lx.cursor.skipWhile(isSpace)
	sp := lx.cursor.spanFrom(mark)
	if sp.Empty() {
		return ""
	}
	return lx.text(sp)
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.off, End: lx.cursor.off}
}
