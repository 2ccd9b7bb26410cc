package book

import "strings"

// replacements maps characters that are awkward in directory names to their
// substitutes. Separator-like characters become underscores to keep names
// readable; decorative characters are dropped outright.
var replacements = map[rune]string{
	'/':  "_",
	'\\': "_",
	'.':  "_",
	' ':  "_",
	',':  "_",
	'\n': "_",
	':':  "_",
	'-':  "_",
	'\'': "",
	'&':  "",
	'+':  "",
	'(':  "",
	')':  "",
	'~':  "",
	'*':  "",
}

// Sanitize rewrites s into a name safe to use as a directory, substituting
// the characters in the replacement table and collapsing any run of
// underscores to one. Sanitizing an already-sanitized name is a no-op.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	for strings.Contains(out, "__") {
		out = strings.ReplaceAll(out, "__", "_")
	}
	return out
}
