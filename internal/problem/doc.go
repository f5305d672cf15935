// Package problem implements the textual problem format consumed by the
// reference CLI: a primary-item block, an optional secondary-item block,
// and a list of semicolon-terminated options, each feeding a dlx.Problem
// through its builder API. There is no yacc/lex tooling in play here, just
// a small hand-written scanner and a single-pass recursive-descent reader,
// matching how the rest of this codebase avoids pulling in a parser
// generator for a grammar this size.
package problem
