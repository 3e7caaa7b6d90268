// Package grapheme segments text into user-perceived characters.
//
// A grapheme cluster is what a reader sees as a single character: a plain
// letter, a letter followed by combining marks, an emoji with a skin-tone
// modifier, a flag built from two regional indicators or a family emoji glued
// together with zero-width joiners. Counting or slicing strings by byte or by
// rune breaks such characters apart, so every length check and every join in
// this module goes through the helpers below.
//
// Segmentation follows Unicode Standard Annex #29 as implemented by
// github.com/rivo/uniseg.
//
// # Usage
//
//	import "github.com/dmitrymomot/passmaker/pkg/grapheme"
//
//	grapheme.Split("a🇯🇵👨‍👩‍👦") // []string{"a", "🇯🇵", "👨‍👩‍👦"}
//	grapheme.Count("á")          // 1, even when written as "a" + U+0301
package grapheme
