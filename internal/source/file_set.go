package source

import (
	"bytes"
	"os"
	"path/filepath"
)

// FileSet owns every input loaded for one document build. Each side of a
// diff gets its own set, so two sets may be used concurrently.
type FileSet struct {
	files []*File
}

func NewFileSet() *FileSet {
	return &FileSet{files: make([]*File, 0, 1)}
}

// Load reads path, drops a UTF-8 BOM and rewrites CRLF to LF. Read errors
// are returned unchanged, so callers can still match fs.ErrNotExist.
func (s *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := bytes.CutPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	crlf := bytes.Contains(content, []byte("\r\n"))
	if crlf {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	}

	f := s.add(path, content)
	f.HadBOM, f.CRLF = hadBOM, crlf
	return f.ID, nil
}

// AddVirtual adds content as is.
func (s *FileSet) AddVirtual(name string, content []byte) FileID {
	f := s.add(name, content)
	f.Virtual = true
	return f.ID
}

func (s *FileSet) add(path string, content []byte) *File {
	f := newFile(FileID(offset(len(s.files))), filepath.ToSlash(filepath.Clean(path)), content)
	s.files = append(s.files, f)
	return f
}

// Get returns the file for id, or nil.
func (s *FileSet) Get(id FileID) *File {
	if int(id) >= len(s.files) {
		return nil
	}
	return s.files[id]
}

func (s *FileSet) Len() int { return len(s.files) }

// Resolve converts both ends of span; unknown files resolve to zero values.
func (s *FileSet) Resolve(span Span) (start, end LineCol) {
	f := s.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return f.Position(span.Start), f.Position(span.End)
}
