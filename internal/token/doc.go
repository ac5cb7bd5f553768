// Package token defines lexical token kinds for assembler input.
// Invariants:
//   - Token.Text is the raw lexeme; for Label and LocalLabel it excludes the
//     trailing ':' which printers add back.
//   - Token.Leading holds the horizontal whitespace that preceded the token on
//     its line. It is kept for reconstruction and never compared.
//   - Newline, Comment and Separator tokens are trivia: they live in the
//     whole-document stream but never join a statement's sibling group.
//   - A directive kind is assigned only to the first word of a statement;
//     the same spelling in operand position is an Ident.
package token
