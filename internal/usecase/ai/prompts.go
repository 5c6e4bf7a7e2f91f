package ai

import (
	"fmt"
	"strings"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

const scoringSystemPrompt = "You are an expert talent evaluator specializing in identifying natural sales talent " +
	"in diverse, non-traditional candidate pools. You prioritize potential over polish and authenticity over perfection."

const toneSystemPrompt = "You are an expert in analyzing voice recordings to assess personality traits, " +
	"confidence, and communication style for job candidates."

// buildScoringPrompt renders the evaluation prompt for one candidate
func buildScoringPrompt(in EvaluationInput) pkgai.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "You are evaluating a candidate named %s for an in-store promoter position.\n\n", in.CandidateName)
	b.WriteString(`EVALUATION CONTEXT:
- Evaluate for natural sales talent and work ethic, not educational sophistication
- Look for evidence of each trait across all answers rather than trusting self-description
- Simple language or grammatical errors must not lower scores when the core message shows promise
- Value practical intelligence, life experience and community connections

CANDIDATE'S RESPONSES:
`)
	for n := 1; n <= entities.QuestionCount; n++ {
		fmt.Fprintf(&b, "\nQuestion %d - %q:\n%s\n", n, entities.QuestionText(n), in.Responses[entities.QuestionKey(n)])
	}

	if len(in.Findings) > 0 {
		b.WriteString("\nVOICE & TONE ANALYSIS:\nInsights about the candidate's vocal delivery from the audio recordings:\n")
		for _, f := range in.Findings {
			fmt.Fprintf(&b, "\nQuestion %d:\n", f.QuestionNumber)
			fmt.Fprintf(&b, "- Confidence Level: %s\n", f.Confidence)
			fmt.Fprintf(&b, "- Enthusiasm: %s\n", f.Enthusiasm)
			fmt.Fprintf(&b, "- Tone Qualities: %s\n", strings.Join(f.Tone, ", "))
			fmt.Fprintf(&b, "- Speech Pace: %s\n", f.SpeechPace)
			fmt.Fprintf(&b, "- Clarity: %s\n", f.Clarity)
			fmt.Fprintf(&b, "- Naturalness: %s\n", f.Naturalness)
			fmt.Fprintf(&b, "- Vocal Insights: %s\n", f.Insights)
		}
		b.WriteString("\nFactor these vocal characteristics into sales aptitude, confidence and authenticity.\n")
	}

	b.WriteString(`
Respond ONLY with a JSON object in this format:
{
  "overallScore": <number 0-100>,
  "traitScores": {
    "selfMotivation": <number 0-100>,
    "salesAptitude": <number 0-100>,
    "reliability": <number 0-100>,
    "dedication": <number 0-100>
  },
  "strengths": [<3-5 specific strengths>],
  "redFlags": [<concerns, or an empty array>],
  "recommendation": "<Hire|Maybe|No-Hire>",
  "interviewFocus": [<2-4 areas to probe in a follow-up interview>]
}`)

	return pkgai.Prompt{System: scoringSystemPrompt, User: b.String()}
}

// buildTonePrompt renders the vocal delivery prompt for one recorded answer
func buildTonePrompt(question int, t *pkgai.Transcription) pkgai.Prompt {
	var b strings.Builder

	b.WriteString("You are analyzing a voice recording from a job candidate for an in-store promoter position.\n\n")
	fmt.Fprintf(&b, "QUESTION ASKED: %q\n\n", entities.QuestionText(question))
	fmt.Fprintf(&b, "TRANSCRIPTION: %q\n\n", t.Text)
	b.WriteString("AUDIO METADATA:\n")
	fmt.Fprintf(&b, "- Duration: %.1f seconds\n", t.DurationSeconds)
	fmt.Fprintf(&b, "- Language: %s\n\n", t.Language)
	b.WriteString(`Assess confidence, enthusiasm, tone qualities, speech pace, clarity and naturalness.

Respond ONLY with a JSON object in this format:
{
  "confidence": "high|medium|low",
  "enthusiasm": "high|medium|low",
  "tone": ["warm", "professional", ...],
  "speechPace": "fast|moderate|slow",
  "clarity": "clear|moderate|unclear",
  "naturalness": "natural|somewhat-rehearsed|rehearsed",
  "insights": "<2-3 sentences on the delivery and what it reveals>"
}`)

	return pkgai.Prompt{System: toneSystemPrompt, User: b.String()}
}
