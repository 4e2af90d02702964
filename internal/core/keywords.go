package core

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var defaultKeywordsYAML []byte

// Keywords is the classifier's rule catalog: one ordered list per category.
type Keywords struct {
	Build          []string `yaml:"build"`
	Product        []string `yaml:"product"`
	ProductTypes   []string `yaml:"product_types"`
	Interrogatives []string `yaml:"interrogatives"`
	Technical      []string `yaml:"technical"`
	Creative       []string `yaml:"creative"`
	Analytical     []string `yaml:"analytical"`
	Tone           []string `yaml:"tone"`
	Audience       []string `yaml:"audience"`
	Domains        []string `yaml:"domains"`
}

var defaultKeywords = mustParseKeywords(defaultKeywordsYAML)

// DefaultKeywords returns a copy of the embedded canonical catalog.
func DefaultKeywords() Keywords {
	return defaultKeywords.clone()
}

// ParseKeywords decodes a YAML keyword catalog.
func ParseKeywords(data []byte) (Keywords, error) {
	var k Keywords
	if err := yaml.Unmarshal(data, &k); err != nil {
		return Keywords{}, fmt.Errorf("failed to parse keywords: %w", err)
	}
	return k, nil
}

// LoadKeywords reads a YAML keyword catalog from disk.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("failed to read keywords file: %w", err)
	}
	return ParseKeywords(data)
}

func mustParseKeywords(data []byte) Keywords {
	k, err := ParseKeywords(data)
	if err != nil {
		panic(err)
	}
	return k
}

// Merge returns a catalog with extra's entries appended after k's.
// Entries already present (case-insensitive) are skipped, so the canonical
// ordering and tie-breaks are preserved.
func (k Keywords) Merge(extra Keywords) Keywords {
	return Keywords{
		Build:          mergeWords(k.Build, extra.Build),
		Product:        mergeWords(k.Product, extra.Product),
		ProductTypes:   mergeWords(k.ProductTypes, extra.ProductTypes),
		Interrogatives: mergeWords(k.Interrogatives, extra.Interrogatives),
		Technical:      mergeWords(k.Technical, extra.Technical),
		Creative:       mergeWords(k.Creative, extra.Creative),
		Analytical:     mergeWords(k.Analytical, extra.Analytical),
		Tone:           mergeWords(k.Tone, extra.Tone),
		Audience:       mergeWords(k.Audience, extra.Audience),
		Domains:        mergeWords(k.Domains, extra.Domains),
	}
}

func (k Keywords) clone() Keywords {
	return k.Merge(Keywords{})
}

func mergeWords(base, extra []string) []string {
	out := slices.Clone(base)
	seen := make(map[string]bool, len(base)+len(extra))
	for _, w := range base {
		seen[normalizeKeyword(w)] = true
	}
	for _, w := range extra {
		n := normalizeKeyword(w)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, w)
	}
	return out
}

func normalizeKeyword(w string) string {
	return strings.Join(strings.Fields(strings.ToLower(w)), " ")
}

// nonWordChar delimits keywords. Letters, digits and underscore are word
// characters, so keywords ending in symbols ("c#", "c++") still match.
const nonWordChar = `[^\p{L}\p{N}_]`

// matcher tests a prompt against one keyword category.
type matcher struct {
	re *regexp.Regexp
}

// newMatcher compiles a whole-word, case-insensitive alternation. An
// anchored matcher only matches at the start of the text, after leading
// whitespace.
func newMatcher(words []string, anchored bool) *matcher {
	var alts []string
	for _, w := range words {
		parts := strings.Fields(strings.ToLower(w))
		if len(parts) == 0 {
			continue
		}
		for i := range parts {
			parts[i] = regexp.QuoteMeta(parts[i])
		}
		alts = append(alts, strings.Join(parts, `\s+`))
	}
	if len(alts) == 0 {
		return &matcher{}
	}

	prefix := `(?:^|` + nonWordChar + `)`
	if anchored {
		prefix = `^\s*`
	}
	pattern := `(?i)` + prefix + `(` + strings.Join(alts, "|") + `)(?:` + nonWordChar + `|$)`
	return &matcher{re: regexp.MustCompile(pattern)}
}

// Match reports whether any keyword occurs in s.
func (m *matcher) Match(s string) bool {
	if m.re == nil {
		return false
	}
	return m.re.MatchString(s)
}

// Find returns the leftmost matching keyword, lower-cased with its
// whitespace collapsed, or "" when nothing matches.
func (m *matcher) Find(s string) string {
	if m.re == nil {
		return ""
	}
	sub := m.re.FindStringSubmatch(s)
	if sub == nil {
		return ""
	}
	return normalizeKeyword(sub[1])
}

// matchers is the compiled form of a Keywords catalog.
type matchers struct {
	build          *matcher
	product        *matcher
	productTypes   *matcher
	interrogatives *matcher
	technical      *matcher
	creative       *matcher
	analytical     *matcher
	tone           *matcher
	audience       *matcher
	domains        *matcher
}

func compileKeywords(k Keywords) *matchers {
	return &matchers{
		build:          newMatcher(k.Build, false),
		product:        newMatcher(k.Product, false),
		productTypes:   newMatcher(k.ProductTypes, false),
		interrogatives: newMatcher(k.Interrogatives, true),
		technical:      newMatcher(k.Technical, false),
		creative:       newMatcher(k.Creative, false),
		analytical:     newMatcher(k.Analytical, false),
		tone:           newMatcher(k.Tone, false),
		audience:       newMatcher(k.Audience, false),
		domains:        newMatcher(k.Domains, false),
	}
}
