package grocery

import (
	"strings"
	"unicode"
)

// Kind is the structural role of a grocery-list line.
type Kind int

const (
	KindIngredient Kind = iota
	KindHeader
	KindSubHeader
)

func (k Kind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindSubHeader:
		return "subheader"
	default:
		return "ingredient"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

const (
	headerMark    = "###"
	subHeaderMark = "**"
	bullet        = "•"
	checkMark     = "✓"
)

// statusTags are the precomputed color tags an ingredient line may start
// with, each immediately followed by a bullet. [black] is written by
// manual adds and carries no information.
var statusTags = []struct {
	tag  string
	hint Status
}{
	{"[green]", StatusInStock},
	{"[red]", StatusUnknown},
	{"[black]", StatusUnknown},
}

// Label is the parsed form of a grocery-list line.
type Label struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
	// Hint is the status recorded when the line was added. It is
	// superseded by live classification against the fridge.
	Hint Status `json:"hint"`
}

// ClassifyLabel parses a raw grocery-list name. Every input is classifiable.
func ClassifyLabel(raw string) Label {
	s := strings.TrimSpace(raw)

	if len(s) >= len(headerMark) && strings.HasPrefix(s, headerMark) && strings.HasSuffix(s, headerMark) {
		text := strings.ReplaceAll(s, headerMark, "")
		text = strings.TrimFunc(text, func(r rune) bool { return r == '#' || unicode.IsSpace(r) })
		return Label{Kind: KindHeader, Text: text}
	}

	if len(s) >= len(subHeaderMark) && strings.HasPrefix(s, subHeaderMark) && strings.HasSuffix(s, subHeaderMark) {
		text := strings.TrimSpace(strings.ReplaceAll(s, subHeaderMark, ""))
		return Label{Kind: KindSubHeader, Text: text}
	}

	for _, st := range statusTags {
		if rest, ok := strings.CutPrefix(s, st.tag+bullet); ok {
			return Label{Kind: KindIngredient, Text: strings.TrimSpace(rest), Hint: st.hint}
		}
	}

	if rest, ok := strings.CutPrefix(s, bullet); ok {
		return Label{Kind: KindIngredient, Text: strings.TrimSpace(rest)}
	}
	if rest, ok := strings.CutPrefix(s, checkMark); ok {
		return Label{Kind: KindIngredient, Text: strings.TrimSpace(rest), Hint: StatusInStock}
	}

	return Label{Kind: KindIngredient, Text: s}
}

// IsHeading reports whether the label is a header or sub-header.
func (l Label) IsHeading() bool {
	return l.Kind == KindHeader || l.Kind == KindSubHeader
}

// NormalizeName returns the matching key for a raw or already-cleaned name:
// structural markers stripped, whitespace trimmed, lower-cased. Each run of
// invalid UTF-8 becomes a single U+FFFD, so such names can share a key.
func NormalizeName(name string) string {
	return strings.ToLower(strings.ToValidUTF8(ClassifyLabel(name).Text, "\uFFFD"))
}
