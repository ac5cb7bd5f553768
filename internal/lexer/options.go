package lexer

import (
	"asmdiff/internal/diag"
	"asmdiff/internal/source"
)

type Options struct {
	Reporter diag.Reporter // nil: ошибки игнорируются, лексинг продолжается
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.Emit(lx.opts.Reporter, diag.NewError(code, sp, msg))
}
