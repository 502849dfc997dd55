// Package vim defines the operator and motion vocabulary of normal mode.
//
// The grammar is deliberately small: an operator key (d or y) followed by
// one motion key (w b h j k l 0 $). Operators and motions are closed
// enumerations looked up from their trigger key; the editor combines them
// through a single range computation.
//
// Word motions split text into whitespace and non-whitespace runs only;
// punctuation is not a word boundary.
package vim
