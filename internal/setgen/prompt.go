package setgen

import (
	"fmt"
	"strings"

	"github.com/sthiel/mentiq/internal/question"
)

const systemPrompt = `You are a psychometrician writing a timed IQ-style test for adults.

Rules:
- Produce a complete question set as one JSON object conforming to the provided schema.
- Use plain ASCII text. No LaTeX, no Unicode math symbols.
- Every question must be self-contained: all information needed to answer is in the prompt and options.
- Each question has one unambiguously correct option; distractors must be plausible but wrong.
- Give each question a short unique id like "q-01", "q-02", in order.
- The explanation must show why the correct option is right in two or three sentences.
- Spread the requested kinds evenly and order questions roughly easy to hard.
- Do not reuse puzzle formats back to back; vary the surface form.`

// buildUserMessage renders the set request as the single user turn.
func buildUserMessage(spec Spec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Set name: %s\n", spec.Name)
	fmt.Fprintf(&b, "Number of questions: %d\n", spec.Count)
	fmt.Fprintf(&b, "Total time limit: %d seconds\n", spec.TotalTimeSecs)
	fmt.Fprintf(&b, "Question kinds: %s\n", strings.Join(kindsOrAll(spec.Kinds), ", "))
	fmt.Fprintf(&b, "Difficulty mix: %s\n", difficultyOrMixed(spec.Difficulty))

	if spec.Theme != "" {
		fmt.Fprintf(&b, "\nTheme the question content around: %s\n", spec.Theme)
	}

	return b.String()
}

func kindsOrAll(kinds []question.Kind) []string {
	if len(kinds) == 0 {
		kinds = question.Kinds
	}
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

func difficultyOrMixed(d string) string {
	if d == "" {
		return "mixed, from easy through expert"
	}
	return d
}
