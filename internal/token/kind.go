package token

// Kind is the classification tag of an assembler token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Newline   // \n
	Comment   // # ... or /* ... */
	Separator // ;
	Comma     // ,

	// Label is a symbol definition "name:".
	Label
	// LocalLabel is a definition whose name starts with '.', e.g. ".L3:".
	LocalLabel
	// Ident is any other word: mnemonic, operand, symbol reference, @type.
	Ident
	// String is a double-quoted literal including its quotes.
	String

	DirSection     // .section
	DirPushSection // .pushsection
	DirPopSection  // .popsection
	DirPrevious    // .previous
	DirText        // .text
	DirData        // .data
	DirBss         // .bss
	DirType        // .type
	DirGlobl       // .globl, .global
	DirLocal       // .local
	DirWeak        // .weak
	DirHidden      // .hidden
	DirProtected   // .protected
	DirInternal    // .internal
	DirSize        // .size
	DirComm        // .comm, .lcomm
	DirSet         // .set, .equ
	DirIdent       // .ident
	DirCFI         // .cfi_*
	DirLoc         // .loc, .file and friends
	DirOther       // any other directive
)

var kindNames = [...]string{
	Invalid:        "invalid",
	EOF:            "eof",
	Newline:        "newline",
	Comment:        "comment",
	Separator:      "separator",
	Comma:          "comma",
	Label:          "label",
	LocalLabel:     "local-label",
	Ident:          "ident",
	String:         "string",
	DirSection:     "dir-section",
	DirPushSection: "dir-pushsection",
	DirPopSection:  "dir-popsection",
	DirPrevious:    "dir-previous",
	DirText:        "dir-text",
	DirData:        "dir-data",
	DirBss:         "dir-bss",
	DirType:        "dir-type",
	DirGlobl:       "dir-globl",
	DirLocal:       "dir-local",
	DirWeak:        "dir-weak",
	DirHidden:      "dir-hidden",
	DirProtected:   "dir-protected",
	DirInternal:    "dir-internal",
	DirSize:        "dir-size",
	DirComm:        "dir-comm",
	DirSet:         "dir-set",
	DirIdent:       "dir-ident",
	DirCFI:         "dir-cfi",
	DirLoc:         "dir-loc",
	DirOther:       "dir-other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// IsTrivia reports whether tokens of this kind stay out of sibling groups.
func (k Kind) IsTrivia() bool {
	switch k {
	case Newline, Comment, Separator:
		return true
	default:
		return false
	}
}

// IsDirective reports whether k is one of the directive sub-kinds.
func (k Kind) IsDirective() bool {
	return k >= DirSection && k <= DirOther
}

// IsLabel reports whether k defines a label.
func (k Kind) IsLabel() bool {
	return k == Label || k == LocalLabel
}

// IsDebugIgnored reports directives that a debug filter comments out.
func (k Kind) IsDebugIgnored() bool {
	return k == DirCFI || k == DirLoc
}
