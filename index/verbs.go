package index

import (
	"encoding/csv"
	"strings"
)

// ParseVerbTable reads the headerless verb index. Rows are comma or tab
// separated. Two column rows map column 0 to column 1; wider rows, as in the
// published index export, map column 1 to column 2. Rows that do not fit are
// skipped and the last row of a repeated verb wins.
func ParseVerbTable(text string) map[string]string {
	verbs := map[string]string{}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = separator(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		record, err := r.Read()
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue
			}
			break
		}

		var verb, code string
		switch {
		case len(record) == 2:
			verb, code = record[0], record[1]
		case len(record) > 2:
			verb, code = record[1], record[2]
		default:
			continue
		}

		verb, code = strings.TrimSpace(verb), strings.TrimSpace(code)
		if verb == "" || code == "" {
			continue
		}
		verbs[verb] = code
	}

	return verbs
}

// separator picks tab if the first non blank line has one.
func separator(text string) rune {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "\t") {
			return '\t'
		}
		return ','
	}
	return ','
}
