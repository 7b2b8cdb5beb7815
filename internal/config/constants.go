// Package config holds the handful of constants an application built on
// this front end externalises rather than inlines: recognised source file
// extensions, and the reserved punctuation the lexer's tests and any future
// layer share one definition of.
package config

// SourceFileExt is the canonical source file extension. Nothing in this
// module applies it as a default: the driver uses paths exactly as given.
const SourceFileExt = ".jfl"

// SourceFileExtensions are the extensions the driver treats as source.
var SourceFileExtensions = []string{".jfl", ".jiffle"}

// ReservedPunctuation lists the multi-purpose punctuation spec.md reserves
// for a future layer (operators, member access, arrows): the tokenizer
// has no dedicated token kind for any of these and folds them into
// SyntaxError, but keeping the set named here means any later layer that
// does recognise them shares this definition instead of duplicating it.
var ReservedPunctuation = []string{
	"&", "|", ":", ".", "->", "<-", "@", "~", "$", "..", "%", "\\",
}
