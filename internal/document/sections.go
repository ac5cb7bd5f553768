package document

import (
	"iter"
	"strings"
)

// GetOrCreateSection returns the section called name, creating it with
// default flags if needed, and moves it to the front of the section order.
func (d *Document) GetOrCreateSection(name string) *Section {
	sec, _ := d.sections.GetOrCreate(name, func() *Section {
		return newSection(name)
	})
	return sec
}

// LookupSection returns the section called name without reordering.
func (d *Document) LookupSection(name string) (*Section, bool) {
	return d.sections.Peek(name)
}

// SetSection makes name the current section and remembers the old one as
// previous. The symbol scope is cleared. An empty name only clears the scope.
func (d *Document) SetSection(name string) *Section {
	d.current = nil
	if name == "" {
		return nil
	}
	sec := d.GetOrCreateSection(name)
	d.prevSection = d.section
	d.section = sec
	return sec
}

// SwapToPrevious exchanges the current and previous sections (.previous).
func (d *Document) SwapToPrevious() {
	d.section, d.prevSection = d.prevSection, d.section
	d.current = nil
}

// PopSection moves to the section after the current one in the section
// order list. This is not a stack pop: it only matches nested
// .pushsection/.popsection pairs when no other section was touched in
// between. The current section becomes nil when there is no successor.
func (d *Document) PopSection() *Section {
	d.current = nil
	if d.section == nil {
		return nil
	}
	_, next, ok := d.sections.Next(d.section.Name)
	if !ok {
		next = nil
	}
	d.section = next
	return next
}

// SetSectionArgs stores the operands of a section directive. A flags string
// containing 'x' marks the section executable; flags are never cleared.
func (d *Document) SetSectionArgs(sec *Section, args SectionArgs) {
	if sec == nil {
		return
	}
	sec.Args = args
	if flags := d.tokens.Get(args.Flags); flags != nil && strings.ContainsRune(flags.Text, executableFlag) {
		sec.Flags |= SectionExecutable
	}
}

// AddToSection appends stmt to the current section's body, if any.
func (d *Document) AddToSection(stmt StmtID) {
	st := d.statements.Get(stmt)
	if d.section == nil || st == nil || st.Section != nil {
		return
	}
	st.Section = d.section
	d.section.Body = append(d.section.Body, stmt)
}

// NumSections reports how many distinct sections exist.
func (d *Document) NumSections() int { return d.sections.Len() }

// Sections iterates sections most recently touched first.
func (d *Document) Sections() iter.Seq[*Section] {
	return d.sections.Values()
}
