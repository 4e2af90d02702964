package core

// SelectStrategy picks the rewriting strategy for an analysis.
// The chain is evaluated top to bottom and the first match wins: a build
// request for a product always becomes a PRD, and questions are routed
// before their technical/creative/analytical vocabulary is considered.
func SelectStrategy(a Analysis) Strategy {
	switch {
	case a.IsBuildRequest && a.IsProductRequest:
		return StrategyPRD
	case a.IsQuestion:
		return StrategyQuestion
	case a.IsCreative:
		return StrategyCreative
	case a.IsAnalytical:
		return StrategyAnalytical
	case a.IsTechnical:
		return StrategyTechnical
	default:
		return StrategyGeneral
	}
}

// questionFocus picks the depth block used inside the Question strategy.
func questionFocus(a Analysis) Strategy {
	switch {
	case a.IsTechnical:
		return StrategyTechnical
	case a.IsCreative:
		return StrategyCreative
	case a.IsAnalytical:
		return StrategyAnalytical
	default:
		return StrategyGeneral
	}
}
