// Package registry maps puzzle identifiers to the compiled Go code that
// solves them.
//
// Each puzzle package exposes a Module that registers itself under its
// two-digit day identifier. The dispatcher looks a day up here and pairs the
// registered solver with the matching manifest entry.
package registry
