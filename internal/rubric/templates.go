package rubric

import "fmt"

// StockPreamble is the opener small models like to prepend to generated
// prompts. Generation instructions forbid it explicitly.
const StockPreamble = "Sure! Here's a Task 2 essay writing prompt:"

// ============================================================================
// Grading templates, indexed by EssayType
// ============================================================================

var gradingTemplates = [essayTypeCount]func(gradingPrompt string) string{
	EssayIELTS: ieltsInstruction,
	EssaySAT:   satInstruction,
	EssayGRE:   greInstruction,
}

func ieltsInstruction(gradingPrompt string) string {
	return fmt.Sprintf(`You are an IELTS examiner grading Task 2. Prompt:

%s

Check topic relevance strictly. Follow:
1) Score out of 9 on:
- Task Response
- Coherence and Cohesion
- Lexical Resource
- Grammar
2) Average for Overall Band (1 decimal).
3) Give brief feedback.
4) Suggest 3 improvements.

**Total output under 100 words. No score repetition.**

Format:
Task Response: <score>
Coherence and Cohesion: <score>
Lexical Resource: <score>
Grammar: <score>
Overall Band Score: <score>

Feedback:
<paragraph>

Suggestions for Improvement:
<3 bullets>

`, gradingPrompt)
}

func satInstruction(gradingPrompt string) string {
	return fmt.Sprintf(`You are an SAT essay scorer. Prompt:

%s

Evaluate strictly. Follow:
1) Score out of 8 on:
- Thesis
- Support
- Organization
- Evidence
- Language Use
2) Average for Total (1 decimal).
3) Give concise feedback.
4) Suggest 3 improvements.

**Limit total output to 100 words. Avoid repetition.**

Format:
Thesis: <score>
Support: <score>
Organization: <score>
Evidence: <score>
Language Use: <score>
Total Score: <score>

Feedback:
<paragraph>

Suggestions for Improvement:
<3 bullets>

`, gradingPrompt)
}

// The two GRE essays share one submission and one combined score on the
// 0-6 scale.
func greInstruction(gradingPrompt string) string {
	return fmt.Sprintf(`You are grading 2 GRE essays: Issue and Argument. Prompts:

%s

Evaluate both combined. I want only one evaluation for both essays out of 6. Follow:
1) Score out of 6 on:
- Clarity
- Logic
- Development
- Grammar
2) Average each essay, then average both into one score out of 6, never a sum out of 12 (1 decimal).
3) Give brief combined feedback.
4) Suggest 3 improvements.

**Output must be 100 words or fewer. No repeating.**

Format:
Clarity: <score>
Logic: <score>
Development: <score>
Grammar: <score>
Total Score: <score>

Feedback:
<paragraph>

Suggestions for Improvement:
<3 bullets>

`, gradingPrompt)
}

// ============================================================================
// Generation instructions, indexed by PromptType
// ============================================================================

const noCommentary = "No other text, instructions, headings (question, prompt) please. " +
	"Don't even say '" + StockPreamble + "'."

var generationInstructions = [promptTypeCount]string{
	PromptIELTS: "You are an expert IELTS exam writer. Give one Task 2 essay (writing part) prompt only. " +
		noCommentary,
	PromptSAT: "You are an expert SAT exam writer. Give one SAT essay (Writing part) prompt only. " +
		"No other text please. " + noCommentary,
	PromptGREIssue: "You are an expert GRE exam writer. Give one GRE Issue Task Essay prompt only. " +
		"No other text please. " + noCommentary,
	PromptGREArgument: "You are an expert GRE exam writer. Give one GRE Argument Essay Task prompt only. " +
		"No other text please. " + noCommentary,
}
