package core

import "strings"

// defaultProductType is used when a product request names no known type.
const defaultProductType = "product"

// Analyze classifies prompt. It never fails: for blank or unmatched input
// every flag is false and ProductType/Domain keep their defaults.
func (e *Engine) Analyze(prompt string) Analysis {
	m := e.matchers
	wordCount := len(strings.Fields(prompt))

	a := Analysis{
		WordCount:        wordCount,
		IsQuestion:       strings.Contains(prompt, "?") || m.interrogatives.Match(prompt),
		IsBuildRequest:   m.build.Match(prompt),
		IsProductRequest: m.product.Match(prompt),
		IsTechnical:      m.technical.Match(prompt),
		IsCreative:       m.creative.Match(prompt),
		IsAnalytical:     m.analytical.Match(prompt),
		IsSpecific:       wordCount > e.thresholds.SpecificWords || strings.ContainsAny(prompt, ",;"),
		HasToneSpecified: m.tone.Match(prompt),
		HasAudience:      m.audience.Match(prompt),
		ProductType:      defaultProductType,
		Domain:           m.domains.Find(prompt),
	}

	if a.IsProductRequest {
		if t := m.productTypes.Find(prompt); t != "" {
			a.ProductType = t
		}
	}

	return a
}
