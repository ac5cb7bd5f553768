package document

// SectionFlags are the modelled section attributes.
type SectionFlags uint8

const (
	SectionExecutable SectionFlags = 1 << iota
)

// DefaultSection is the code section every document starts in.
const DefaultSection = ".text"

// executableFlag is the character in a section flags string that marks code.
const executableFlag = 'x'

func (f SectionFlags) String() string {
	if f&SectionExecutable != 0 {
		return "x"
	}
	return ""
}

// SectionArgs captures the operands of an explicit section directive.
type SectionArgs struct {
	Flags TokenID
	Type  TokenID
	Extra []TokenID
}

// Section is a named output region.
type Section struct {
	Name  string
	Flags SectionFlags
	Body  []StmtID
	Args  SectionArgs
}

// Executable reports whether the section holds code. A nil section does not.
func (s *Section) Executable() bool {
	return s != nil && s.Flags&SectionExecutable != 0
}

func newSection(name string) *Section {
	s := &Section{Name: name}
	if name == DefaultSection {
		s.Flags |= SectionExecutable
	}
	return s
}
