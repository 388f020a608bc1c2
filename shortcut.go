package crontime

import (
	"slices"
	"strings"
)

// shortcuts maps each shortcut token to its five-field expansion.
var shortcuts = map[string]string{
	"@yearly":   "0 0 1 1 *",
	"@annually": "0 0 1 1 *",
	"@monthly":  "0 0 1 * *",
	"@weekly":   "0 0 * * 0",
	"@daily":    "0 0 * * *",
	"@hourly":   "0 * * * *",
	"@minutely": "* * * * *",
}

// Shortcuts returns the recognized shortcut tokens in sorted order.
func Shortcuts() []string {
	names := make([]string, 0, len(shortcuts))
	for name := range shortcuts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ExpandShortcut returns the five-field expansion of a shortcut token such
// as "@daily" (case insensitive).
func ExpandShortcut(name string) (string, bool) {
	expansion, ok := shortcuts[strings.ToLower(strings.TrimSpace(name))]
	return expansion, ok
}

// normalized is an expression split into its five positional tokens.
type normalized struct {
	// input is the space-joined tokens that were present.
	input  string
	tokens [fieldCount]string
	// ignored holds tokens dropped after a shortcut or past the fifth field.
	ignored []string
}

// normalize joins args, collapses whitespace, lowercases, expands a leading
// shortcut and splits the result into five field tokens. Missing trailing
// tokens are empty.
func normalize(args []string) normalized {
	words := strings.Fields(strings.ToLower(strings.Join(args, " ")))

	var n normalized
	if len(words) > 0 {
		if expansion, ok := shortcuts[words[0]]; ok {
			n.ignored = words[1:]
			words = strings.Fields(expansion)
		}
	}
	if len(words) > fieldCount {
		n.ignored = append(n.ignored, words[fieldCount:]...)
		words = words[:fieldCount]
	}

	n.input = strings.Join(words, " ")
	copy(n.tokens[:], words)
	return n
}
