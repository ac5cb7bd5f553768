// Package fuzztests houses Go fuzz harnesses for the asmdiff pipeline
// (source -> lexer -> parser -> document -> compare). They guard against
// panics, hangs and broken document invariants on arbitrary input.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
