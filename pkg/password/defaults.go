package password

// Default candidate sets. Symbols are the printable ASCII punctuation
// characters in ascending code point order.
const (
	DefaultLength    = 16
	DefaultLowercase = "abcdefghijklmnopqrstuvwxyz"
	DefaultUppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DefaultNumbers   = "0123456789"
	DefaultSymbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// MaxLength bounds Generator.Length so a password always fits in memory.
const MaxLength = 1 << 16

// whitespace is added to the pool when Generator.IncludeWhitespace is set.
const whitespace = " "

// similar lists characters that are easy to confuse when read back.
var similar = map[string]struct{}{
	"i": {}, "l": {}, "1": {},
	"o": {}, "0": {}, "O": {},
}
