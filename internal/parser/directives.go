package parser

import (
	"fmt"

	"asmdiff/internal/diag"
	"asmdiff/internal/document"
	"asmdiff/internal/token"
	"asmdiff/internal/trace"
)

// listAttrs are directives taking a comma separated list of symbol names.
var listAttrs = map[token.Kind]document.Attr{
	token.DirGlobl:     document.AttrVisibility,
	token.DirLocal:     document.AttrVisibility,
	token.DirWeak:      document.AttrWeak,
	token.DirHidden:    document.AttrHidden,
	token.DirProtected: document.AttrProtected,
	token.DirInternal:  document.AttrInternal,
}

// nameAttrs are directives whose first operand names a symbol.
var nameAttrs = map[token.Kind]document.Attr{
	token.DirSize: document.AttrSize,
	token.DirComm: document.AttrComm,
	token.DirSet:  document.AttrSet,
}

var shortcutSections = map[token.Kind]string{
	token.DirText: document.DefaultSection,
	token.DirData: ".data",
	token.DirBss:  ".bss",
}

func (p *Parser) parseDirective(head ref) {
	args := splitOperands(p.operands())
	stmt := p.doc.NewStatement(head.id, document.NoTokenID)

	kind := head.tok.Kind
	switch kind {
	case token.DirSection, token.DirPushSection:
		p.sectionDirective(head, args)
	case token.DirText, token.DirData, token.DirBss:
		p.switchSection(shortcutSections[kind])
	case token.DirPrevious:
		p.doc.SwapToPrevious()
		p.traceSection("previous")
		p.noSecWrn = false
	case token.DirPopSection:
		if p.doc.PopSection() == nil {
			p.warnAt(diag.DocUnbalancedPop, head.tok.Span, "no section left to pop back to")
		}
		p.traceSection("pop")
		p.noSecWrn = false
	case token.DirType:
		p.typeDirective(head, stmt, args)
	default:
		if attr, ok := listAttrs[kind]; ok {
			p.listDirective(head, stmt, attr, args)
			break
		}
		if attr, ok := nameAttrs[kind]; ok {
			p.nameDirective(head, stmt, attr, args)
			break
		}
		p.doc.AddToSymbol(stmt)
	}
	p.addToSection(stmt, head)
}

// sectionDirective handles .section/.pushsection name[, flags[, type[, ...]]].
func (p *Parser) sectionDirective(head ref, args [][]ref) {
	if len(args) == 0 || len(args[0]) == 0 || !isName(args[0][0]) {
		p.errorAt(diag.SynExpectSectionName, p.endSpan(),
			fmt.Sprintf("expected section name after %s", head.tok.Text))
		return
	}
	sec := p.switchSection(args[0][0].tok.Unquoted())
	if len(args) == 1 {
		return
	}

	var sa document.SectionArgs
	if len(args[1]) > 0 {
		sa.Flags = args[1][0].id
	}
	if len(args) > 2 && len(args[2]) > 0 {
		sa.Type = args[2][0].id
	}
	for _, group := range args[min(3, len(args)):] {
		for _, r := range group {
			sa.Extra = append(sa.Extra, r.id)
		}
	}
	p.doc.SetSectionArgs(sec, sa)
}

func (p *Parser) switchSection(name string) *document.Section {
	sec := p.doc.SetSection(name)
	p.traceSection(name)
	p.noSecWrn = false
	return sec
}

// typeDirective handles .type name, @kind.
func (p *Parser) typeDirective(head ref, stmt document.StmtID, args [][]ref) {
	name, ok := p.symbolOperand(head, args)
	if !ok {
		return
	}
	if len(args) < 2 {
		p.errorAt(diag.SynExpectComma, p.endSpan(), "expected ',' after symbol name in .type")
		return
	}
	if len(args[1]) == 0 {
		p.errorAt(diag.SynExpectSymbolType, p.endSpan(), "expected symbol type such as @function")
		return
	}
	p.doc.SetType(name, stmt, args[1][0].id)
}

// listDirective applies attr to every listed name.
func (p *Parser) listDirective(head ref, stmt document.StmtID, attr document.Attr, args [][]ref) {
	if len(args) == 0 {
		p.errorAt(diag.SynExpectIdentifier, p.endSpan(),
			fmt.Sprintf("expected symbol name after %s", head.tok.Text))
		return
	}
	for _, group := range args {
		if len(group) == 0 || !isName(group[0]) {
			p.errorAt(diag.SynExpectIdentifier, p.endSpan(),
				fmt.Sprintf("expected symbol name in %s list", head.tok.Text))
			return
		}
		p.doc.SetAttr(attr, group[0].tok.Unquoted(), stmt)
	}
}

func (p *Parser) nameDirective(head ref, stmt document.StmtID, attr document.Attr, args [][]ref) {
	name, ok := p.symbolOperand(head, args)
	if !ok {
		return
	}
	p.doc.SetAttr(attr, name, stmt)
}

func (p *Parser) symbolOperand(head ref, args [][]ref) (string, bool) {
	if len(args) == 0 || len(args[0]) == 0 || !isName(args[0][0]) {
		p.errorAt(diag.SynExpectIdentifier, p.endSpan(),
			fmt.Sprintf("expected symbol name after %s", head.tok.Text))
		return "", false
	}
	return args[0][0].tok.Unquoted(), true
}

func (p *Parser) traceSection(detail string) {
	trace.Point(p.tracer, trace.ScopeDocument, "section", detail, p.span)
}
