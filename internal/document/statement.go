package document

// Statement is one instruction, directive or label definition. Its token list
// is the sibling group: trivia tokens never appear in it. A statement may sit
// in one symbol body and one section body at the same time.
type Statement struct {
	Tokens  []TokenID
	Symbol  *Symbol
	Section *Section
}

// First returns the leading token of the statement.
func (s *Statement) First() TokenID {
	if s == nil || len(s.Tokens) == 0 {
		return NoTokenID
	}
	return s.Tokens[0]
}

// Last returns the final token of the statement.
func (s *Statement) Last() TokenID {
	if s == nil || len(s.Tokens) == 0 {
		return NoTokenID
	}
	return s.Tokens[len(s.Tokens)-1]
}
