package index

import (
	"strconv"
	"strings"

	sent "github.com/revelaction/zenkou/sentence"
)

// high level classes, keyed by the first code segment
var highClasses = map[string]string{
	"1": "体の類",
	"2": "用の類",
	"3": "相の類",
	"4": "その他の類",
}

type span struct{ lo, hi int }

type midClass struct {
	spans []span
	name  string
}

// mid level classes by major class, keyed by the second code segment
var midClasses = map[string][]midClass{
	"1": {
		{[]span{{100, 199}, {1100, 1999}}, "抽象的関係"},
		{[]span{{200, 299}, {2300, 2399}}, "人間活動の主体"},
		{[]span{{300, 399}, {3000, 3999}}, "人間活動－精神および行為"},
		{[]span{{400, 499}}, "生産物および用具"},
		{[]span{{500, 599}}, "自然物および自然現象"},
	},
	"2": {
		{[]span{{100, 199}, {1500, 1999}}, "抽象的関係"},
		{[]span{{300, 399}, {3000, 3999}}, "精神および行為"},
		{[]span{{500, 599}}, "自然現象"},
	},
	"3": {
		{[]span{{100, 199}}, "抽象的関係"},
		{[]span{{300, 399}}, "精神および行為"},
		{[]span{{500, 599}}, "自然現象"},
	},
}

// HighClass returns the top level class of a code, empty if unknown.
func HighClass(code string) string {
	major, _, _ := strings.Cut(code, ".")
	return highClasses[major]
}

// MidClass returns the second level class of a code. Codes without a
// numeric second segment, or outside every range, have none.
func MidClass(code string) string {
	parts := strings.Split(code, ".")
	if len(parts) < 2 {
		return ""
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}

	for _, mc := range midClasses[parts[0]] {
		for _, s := range mc.spans {
			if minor >= s.lo && minor <= s.hi {
				return mc.name
			}
		}
	}

	return ""
}

// GlossOf returns the three level gloss of a code with its term.
func GlossOf(code, term string) sent.Gloss {
	return sent.Gloss{High: HighClass(code), Mid: MidClass(code), Term: term}
}

// BuildGlosses computes the gloss of every code of a hierarchy.
func BuildGlosses(terms map[string]string) map[string]sent.Gloss {
	glosses := make(map[string]sent.Gloss, len(terms))
	for code, term := range terms {
		glosses[code] = GlossOf(code, term)
	}
	return glosses
}
