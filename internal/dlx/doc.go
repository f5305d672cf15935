// Package dlx implements Knuth's dancing-links family of algorithms for
// exact cover with colors (XCC): Algorithm C (7.2.2.1) for the coloured
// case, Algorithm X as the colourless special case of the same driver, and
// a restricted Algorithm M for primary items with covering multiplicities.
//
// The arena is a handful of parallel, index-addressed arrays (name, llink,
// rlink, ulink, dlink, top, color, len) rather than a pointer graph: every
// mutation is O(1) and every primitive (hide/unhide, cover/uncover, their
// coloured variants, purify/unpurify, commit/uncommit, tweak/untweak) has an
// exact inverse, so backtracking restores bitwise-identical state.
//
// A Problem is built incrementally (DefinePrimaryItem/DefineSecondaryItem,
// PrepareOptions, BeginOption/AddItem/EndOption, EndOptions) and then solved
// by repeated calls to ComputeNextResult, which behaves like a resumable
// coroutine implemented as an explicit state machine rather than a language
// generator.
package dlx
