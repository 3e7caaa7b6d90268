// Package charset converts between UTF-8 and legacy text encodings such as
// Shift_JIS or EUC-KR.
//
// Encodings are looked up by their WHATWG labels ("utf-8", "shift_jis",
// "sjis", "euc-kr", ...) through golang.org/x/text/encoding/htmlindex. The
// special "replacement" encoding is rejected because it can only decode.
//
// Decoding is lossy: byte sequences that are invalid in the source encoding
// become U+FFFD. Encoding never fails on content: characters the target
// encoding cannot represent are written as HTML numeric character references
// (e.g. "&#128512;").
//
// # Usage
//
//	import "github.com/dmitrymomot/passmaker/pkg/charset"
//
//	s, err := charset.Decode([]byte{0x82, 0xA0}, "shift_jis") // "あ"
//	b, err := charset.Encode("あ", "shift_jis")               // []byte{0x82, 0xA0}
package charset
