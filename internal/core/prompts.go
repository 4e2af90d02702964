package core

import (
	"fmt"
)

// defaultDomain fills the PRD when no industry keyword was found.
const defaultDomain = "your industry"

// PRDTemplate is the document that replaces build requests.
// Arguments: 1 = original prompt, 2 = product type, 3 = domain.
const PRDTemplate = `# Project Requirement Document (PRD)

## Overview
%[1]s

## Objectives
Please provide detailed objectives for this %[2]s, including:
- Primary goal
- Target audience in %[3]s
- Key problems it solves for users
- Unique value proposition

## Functional Requirements
1. Core Features (must-have)
   -
   -
   -

2. Secondary Features (nice-to-have)
   -
   -

## Technical Specifications
- Recommended tech stack for this %[2]s
- Integration requirements with existing systems
- Security considerations for %[3]s
- Performance requirements and metrics

## User Experience
- User flow for primary interactions
- Key user stories (As a ___, I want to ___, so that ___)
- Design principles to follow for %[3]s %[2]ss
- Accessibility considerations

## Data Management
- Data storage requirements
- Data processing needs
- Privacy considerations for %[3]s

## Timeline and Milestones
- Suggested development phases
- Key deliverables for each phase
- Critical path items

## Success Metrics
- How to measure the success of this %[2]s
- KPIs to track specific to %[3]s
- User adoption strategies

## Risk Assessment
- Potential challenges specific to %[3]s
- Mitigation strategies
- Alternative approaches

Please provide comprehensive details for each section above, maintaining a professional, strategic tone throughout the document.`

// BuildPRD renders the PRD template for a prompt.
func BuildPRD(prompt string, a Analysis) string {
	productType := a.ProductType
	if productType == "" {
		productType = defaultProductType
	}
	domain := a.Domain
	if domain == "" {
		domain = defaultDomain
	}
	return fmt.Sprintf(PRDTemplate, prompt, productType, domain)
}

// Guidance catalog.
//
// The renderer gates blocks on keywords found in the text accumulated so
// far ("tone"/"style", "structure"/"format", "example"). Block text must not
// carry those substrings unless it is meant to suppress the later block, so
// words such as "informative" or "information" are avoided.

// depthBlocks are the approach lists for the append-only strategies.
var depthBlocks = map[Strategy]string{
	StrategyCreative: `When creating this content, please include:
- Vivid sensory details and descriptions
- Well-developed characters with clear motivations and conflicts
- A coherent narrative arc with satisfying pacing
- Thematic depth and meaningful subtext
- Engaging dialogue that reveals character and advances the story`,

	StrategyAnalytical: `When analyzing this topic, please include:
- Multiple perspectives and how they compare
- Evidence and data supporting each claim
- Clear criteria for evaluation
- Strengths, weaknesses, and trade-offs
- A well-reasoned conclusion`,

	StrategyTechnical: `When addressing this technical request, please include:
- Clear, systematic explanation of concepts and processes
- Practical code examples with comments explaining key parts
- Best practices and optimization techniques
- Common pitfalls and how to avoid them
- Resources for further learning`,

	StrategyGeneral: `Please provide a comprehensive response that includes:
- Detailed explanation with clear context
- Concrete examples or case studies
- Different perspectives or approaches
- Practical applications or implications
- Relevant facts, data, or evidence`,
}

// questionDepthBlocks are keyed by the question's focus.
var questionDepthBlocks = map[Strategy]string{
	StrategyTechnical: `Please provide a detailed technical explanation with code examples where appropriate. Consider:
- Step-by-step breakdown of the solution
- Edge cases and how to handle them
- Performance implications and optimization strategies
- Industry best practices and standards
- Alternative approaches with pros and cons`,

	StrategyCreative: `Please explore this question from multiple creative perspectives. Consider:
- Different interpretations of the question
- Diverse viewpoints and approaches
- Concrete examples and scenarios
- Underlying principles and patterns
- Innovative or unconventional angles`,

	StrategyAnalytical: `Please provide an in-depth analysis with:
- Comprehensive examination of relevant factors
- Evidence-based arguments from credible sources
- Evaluation of different perspectives
- Logical reasoning and frameworks
- Real-world implications and applications`,

	StrategyGeneral: `Please provide a thorough response that includes:
- Clear, direct answer to the question
- Supporting context and background details
- Concrete examples or illustrations
- Nuances or caveats to consider
- Further questions to explore if relevant`,
}

var toneBlocks = map[Strategy]string{
	StrategyQuestion:   "Please use a conversational yet knowledgeable tone, balancing accessibility with depth of expertise.",
	StrategyCreative:   "Please use an engaging, immersive style that draws the reader in and creates an emotional connection.",
	StrategyAnalytical: "Please use an objective, analytical tone grounded in evidence.",
	StrategyTechnical:  "Please use a precise, accessible technical tone that balances detail with clarity.",
	StrategyGeneral:    "Please use a balanced, engaging tone that is clear and accessible.",
}

const sectionsAndBullets = "Please structure your response with clear sections and bullet points where appropriate to enhance readability."

var structureBlocks = map[Strategy]string{
	StrategyQuestion:   sectionsAndBullets,
	StrategyCreative:   "Please structure the piece with a clear beginning, middle, and end so the narrative flows naturally.",
	StrategyAnalytical: "Please structure your response with a heading for each major point and bullet points for the supporting evidence.",
	StrategyTechnical:  "Please structure your response in clearly labeled sections: overview, implementation, and considerations.",
	StrategyGeneral:    sectionsAndBullets,
}

// ExamplesRequest is appended to longer prompts that do not ask for examples.
const ExamplesRequest = "Please include concrete examples that illustrate each key point."

// Gate keywords, matched case-insensitively as substrings.
var (
	toneGate      = []string{"tone", "style"}
	structureGate = []string{"structure", "format"}
	examplesGate  = []string{"example"}
)
