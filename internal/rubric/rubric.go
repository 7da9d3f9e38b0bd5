// Package rubric validates test-type selectors and renders the system
// instructions sent to the model for grading and prompt generation.
package rubric

import (
	"errors"
	"strings"
)

var (
	ErrInvalidEssayType  = errors.New("Invalid or missing test type. Use IELTS, SAT, or GRE.")
	ErrInvalidPromptType = errors.New("Invalid or missing test type. Use IELTS, SAT, GRE-ISSUE, or GRE-ARGUMENT.")
)

// EssayType selects the grading rubric for a submitted essay.
type EssayType int

const (
	EssayIELTS EssayType = iota
	EssaySAT
	EssayGRE

	essayTypeCount
)

var essayTypeNames = [essayTypeCount]string{
	EssayIELTS: "IELTS",
	EssaySAT:   "SAT",
	EssayGRE:   "GRE",
}

func (t EssayType) String() string {
	if t < 0 || t >= essayTypeCount {
		return "UNKNOWN"
	}
	return essayTypeNames[t]
}

// ParseEssayType trims and upper-cases s before matching it against the
// supported rubrics.
func ParseEssayType(s string) (EssayType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range essayTypeNames {
		if s == name {
			return EssayType(t), nil
		}
	}
	return 0, ErrInvalidEssayType
}

// PromptType selects which kind of writing prompt to generate. GRE is split
// into its two essay tasks here.
type PromptType int

const (
	PromptIELTS PromptType = iota
	PromptSAT
	PromptGREIssue
	PromptGREArgument

	promptTypeCount
)

var promptTypeNames = [promptTypeCount]string{
	PromptIELTS:       "IELTS",
	PromptSAT:         "SAT",
	PromptGREIssue:    "GRE-ISSUE",
	PromptGREArgument: "GRE-ARGUMENT",
}

func (t PromptType) String() string {
	if t < 0 || t >= promptTypeCount {
		return "UNKNOWN"
	}
	return promptTypeNames[t]
}

// ParsePromptType trims and upper-cases s before matching it against the
// supported prompt kinds.
func ParsePromptType(s string) (PromptType, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for t, name := range promptTypeNames {
		if s == name {
			return PromptType(t), nil
		}
	}
	return 0, ErrInvalidPromptType
}

// GradingInstruction renders the system message for grading an essay of the
// given type. gradingPrompt is the task the essay answers and is embedded
// verbatim after trimming; it may be empty.
func GradingInstruction(t EssayType, gradingPrompt string) string {
	return gradingTemplates[t](strings.TrimSpace(gradingPrompt))
}

// GenerationInstruction returns the system message asking the model for a
// single writing prompt of the given type.
func GenerationInstruction(t PromptType) string {
	return generationInstructions[t]
}
