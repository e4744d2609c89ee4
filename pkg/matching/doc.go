// Package matching implements the two primitive predicates triggers are
// built from: shell-style glob matching of filenames and paths, and content
// matching of document text with one of the closed set of algorithms.
//
// Glob patterns are matched against the whole candidate string, not path
// segment by path segment, so "*" also matches "/":
//
//	MatchesGlob("*simple*", "/scratch/simple.pdf")  // true
//	MatchesGlob("*foo/bar*", "/scratch/simple.pdf") // false
//
// Both predicates are pure. Malformed patterns never panic; they fail closed
// and report a PATTERN_INVALID error for the caller to log.
package matching
