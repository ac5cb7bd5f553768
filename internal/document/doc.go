// Package document holds the in-memory model of one assembler source: every
// token in input order, the statements they group into, and two registries
// attributing statements to the symbol they define or modify and to the
// section they live in.
//
// A Document is built by exactly one driver, strictly in statement order:
//
//	id := doc.AddToken(tok)          // for every token, trivia included
//	st := doc.NewStatement(first, la) // at each statement boundary
//	doc.SetLabel / SetType / SetAttr / SetSection / ...
//	doc.Finalize()                   // once, at end of input
//
// Before Finalize symbols are reached through the move-to-front order list
// (nearby lines keep touching the same few symbols); after it, Find answers
// by name from a balanced tree. Calling Finalize twice is an error; mutating
// a finalized document leaves Find stale.
//
// Tokens and statements live in arenas and are addressed by TokenID and
// StmtID. Index 0 of each arena is reserved so the zero ID means "none".
package document
