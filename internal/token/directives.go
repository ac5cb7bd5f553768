package token

import "strings"

var directives = map[string]Kind{
	".section":     DirSection,
	".pushsection": DirPushSection,
	".popsection":  DirPopSection,
	".previous":    DirPrevious,
	".text":        DirText,
	".data":        DirData,
	".bss":         DirBss,
	".type":        DirType,
	".globl":       DirGlobl,
	".global":      DirGlobl,
	".local":       DirLocal,
	".weak":        DirWeak,
	".hidden":      DirHidden,
	".protected":   DirProtected,
	".internal":    DirInternal,
	".size":        DirSize,
	".comm":        DirComm,
	".lcomm":       DirComm,
	".set":         DirSet,
	".equ":         DirSet,
	".ident":       DirIdent,
	".loc":         DirLoc,
	".file":        DirLoc,
}

// LookupDirective maps a directive spelling (with its leading '.') to a Kind.
// Unknown directives map to DirOther; non-directives report false.
func LookupDirective(word string) (Kind, bool) {
	if len(word) < 2 || word[0] != '.' {
		return Invalid, false
	}
	if k, ok := directives[word]; ok {
		return k, true
	}
	if strings.HasPrefix(word, ".cfi_") {
		return DirCFI, true
	}
	return DirOther, true
}
