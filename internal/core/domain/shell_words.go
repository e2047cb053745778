package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// SplitShellWords splits s into words following POSIX shell quoting.
// Single quotes preserve everything literally; inside double quotes a
// backslash only escapes $, `, ", \ and newline. No expansion is performed.
func SplitShellWords(s string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		inWord  bool
	)

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		case r == '\\':
			inWord = true
			if i+1 < len(runes) {
				i++
				if runes[i] != '\n' {
					current.WriteRune(runes[i])
				}
			}
		case r == '\'':
			inWord = true
			end := indexRune(runes, i+1, '\'')
			if end < 0 {
				return nil, zerr.With(zerr.Wrap(ErrUnbalancedQuote, "cannot split options"), "options", s)
			}
			current.WriteString(string(runes[i+1 : end]))
			i = end
		case r == '"':
			inWord = true
			closed := false
			for i++; i < len(runes); i++ {
				c := runes[i]
				if c == '"' {
					closed = true
					break
				}
				if c == '\\' && i+1 < len(runes) && strings.ContainsRune("$`\"\\\n", runes[i+1]) {
					i++
					if runes[i] != '\n' {
						current.WriteRune(runes[i])
					}
					continue
				}
				current.WriteRune(c)
			}
			if !closed {
				return nil, zerr.With(zerr.Wrap(ErrUnbalancedQuote, "cannot split options"), "options", s)
			}
		default:
			inWord = true
			current.WriteRune(r)
		}
	}
	if inWord {
		words = append(words, current.String())
	}
	return words, nil
}

func indexRune(runes []rune, from int, target rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}
