package frequency

import (
	"strconv"
	"strings"
)

type Entry struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Count  int    `json:"count" yaml:"count"`
}

// Report lists the prefixes of one length that survived a filter, most
// frequent first.
type Report struct {
	PrefixLen int     `json:"prefix_len" yaml:"prefix_len"`
	Entries   []Entry `json:"entries" yaml:"entries"`
}

// String renders the report as a brace-delimited block, one tab-indented
// "prefix": count line per entry. Prefixes are written verbatim between the
// quotes.
func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString("tree -> {\n")
	for _, e := range r.Entries {
		sb.WriteString("\t")
		sb.WriteString(`"`)
		sb.WriteString(e.Prefix)
		sb.WriteString(`": `)
		sb.WriteString(strconv.Itoa(e.Count))
		sb.WriteString("\n")
	}
	sb.WriteString("}")
	return sb.String()
}
