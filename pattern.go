package datefmt

import (
	"strings"
	"unicode/utf8"
)

// patternFields lists the LDML pattern letters the engine understands. Other
// ASCII letters are kept as literal text.
const patternFields = "GyuMLdDEecahHkKmsSZXx"

// patternToken is either a literal run (field == 0) or a field repeated
// width times, e.g. "yyyy" is {field: 'y', width: 4}.
type patternToken struct {
	field   byte
	width   int
	literal string
}

func (t patternToken) isLiteral() bool {
	return t.field == 0
}

// numeric reports whether the token renders as digits.
func (t patternToken) numeric() bool {
	switch t.field {
	case 'y', 'u', 'd', 'D', 'h', 'H', 'k', 'K', 'm', 's', 'S':
		return true
	case 'M', 'L', 'e', 'c':
		return t.width <= 2
	default:
		return false
	}
}

// compilePattern splits an LDML pattern into tokens. Quoted sections are
// literal, "''" is a single quote, and an unterminated quote runs to the end
// of the pattern.
func compilePattern(pattern string) []patternToken {
	var tokens []patternToken
	var literal strings.Builder

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		tokens = append(tokens, patternToken{literal: literal.String()})
		literal.Reset()
	}

	for i := 0; i < len(pattern); {
		c := pattern[i]

		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				literal.WriteByte('\'')
				i += 2
				continue
			}
			i++
			for i < len(pattern) {
				if pattern[i] == '\'' {
					if i+1 < len(pattern) && pattern[i+1] == '\'' {
						literal.WriteByte('\'')
						i += 2
						continue
					}
					i++
					break
				}
				literal.WriteByte(pattern[i])
				i++
			}
			continue
		}

		if c < utf8.RuneSelf && strings.IndexByte(patternFields, c) >= 0 {
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			flush()
			tokens = append(tokens, patternToken{field: c, width: j - i})
			i = j
			continue
		}

		literal.WriteByte(c)
		i++
	}

	flush()
	return tokens
}
