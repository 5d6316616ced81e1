package index

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// absolute (1.100, 1.100.2) or parent relative (.101) codes
	dottedLine = regexp.MustCompile(`^([\s\x{3000}]*)(\d+\.\d+(?:\.\d+)*|\.\d+)[ \x{3000}]+([^ \x{3000}].*)$`)

	// bare sub-code, only meaningful when indented
	bareLine = regexp.MustCompile(`^([\s\x{3000}]+)(\d+)[ \x{3000}]+([^ \x{3000}].*)$`)
)

type frame struct {
	code   string
	indent int
}

// ParseHierarchy builds the code to term map of an indented classification
// index. Lines carry an absolute dotted code, a parent relative code
// starting with a dot, or an indented bare sub-code. The parent of a line is
// resolved through the stack of open ancestors, never by string prefix.
// Lines that cannot be resolved are dropped. When a code repeats, the last
// line wins.
func ParseHierarchy(text string) map[string]string {
	terms := map[string]string{}
	var stack []frame

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		if line == "" {
			continue
		}

		var code, term string
		var indent int

		if m := dottedLine.FindStringSubmatch(line); m != nil {
			indent = utf8.RuneCountInString(m[1])
			term = cleanTerm(m[3])

			if strings.HasPrefix(m[2], ".") {
				if len(stack) == 0 {
					continue
				}
				code = stack[len(stack)-1].code + m[2]
			} else {
				code = m[2]
			}
		} else if m := bareLine.FindStringSubmatch(line); m != nil {
			indent = utf8.RuneCountInString(m[1])
			term = cleanTerm(m[3])

			stack = popTo(stack, indent)
			if len(stack) == 0 {
				continue
			}
			code = stack[len(stack)-1].code + "." + m[2]
		} else {
			continue
		}

		if term == "" {
			continue
		}

		stack = append(popTo(stack, indent), frame{code: code, indent: indent})
		terms[code] = term
	}

	return terms
}

// popTo removes the frames that cannot be ancestors of a line with the given
// indentation.
func popTo(stack []frame, indent int) []frame {
	for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
		stack = stack[:len(stack)-1]
	}
	return stack
}

// cleanTerm trims trailing blanks and dot leaders.
func cleanTerm(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	s = strings.TrimRight(s, ".")
	return strings.TrimSpace(s)
}
