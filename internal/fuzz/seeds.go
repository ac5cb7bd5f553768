package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

var builtinSeeds = []string{
	"",
	".text\n.globl foo\n.type foo, @function\nfoo:\n\tpushq %rbp\n\tret\n",
	".section .rodata\ntable:\n.LC0:\n\t.string \"hi\"\n",
	".section .foo,\"ax\",@progbits\n.section .bar\n.previous\nnop\n",
	".pushsection .data\n.popsection\n.popsection\n",
	"main: pushq %rbp; movq %rsp, %rbp # frame\n/* block */ ret\n",
	".globl a,,b\n.type x\n.ascii \"open\n",
	".cfi_startproc\n.loc 1 2 3\n.section .debug_info\n.long 0\n.text\n.cfi_endproc\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds adds every *.s file under ../../testdata when present.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".s" && ext != ".S" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
