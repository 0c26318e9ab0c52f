// Package types defines the core interfaces shared across easyfile: the
// filesystem abstraction, the interactive prompter, the directory ensurer
// and the document opener, together with the small value types they
// exchange.
package types
