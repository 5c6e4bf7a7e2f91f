package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/candidate-screening/internal/usecase/errors"
)

// Parser validates model output against the evaluation and finding schemas.
// Anything that does not match fails closed with ErrMalformedUpstream.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

type rawTraitScores struct {
	SelfMotivation *float64 `json:"selfMotivation"`
	SalesAptitude  *float64 `json:"salesAptitude"`
	Reliability    *float64 `json:"reliability"`
	Dedication     *float64 `json:"dedication"`
}

type rawEvaluation struct {
	OverallScore   *float64        `json:"overallScore"`
	TraitScores    *rawTraitScores `json:"traitScores"`
	Strengths      *[]string       `json:"strengths"`
	RedFlags       *[]string       `json:"redFlags"`
	Recommendation *string         `json:"recommendation"`
	InterviewFocus []string        `json:"interviewFocus"`
	ProblemAreas   []string        `json:"problemAreas"`
}

type rawFinding struct {
	Confidence  *string  `json:"confidence"`
	Enthusiasm  *string  `json:"enthusiasm"`
	Tone        []string `json:"tone"`
	SpeechPace  *string  `json:"speechPace"`
	Clarity     *string  `json:"clarity"`
	Naturalness *string  `json:"naturalness"`
	Insights    *string  `json:"insights"`
}

// ParseEvaluation parses a scoring response into an Evaluation
func (p *Parser) ParseEvaluation(content string) (*entities.Evaluation, error) {
	var raw rawEvaluation
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}

	overall, err := score("overallScore", raw.OverallScore)
	if err != nil {
		return nil, err
	}

	if raw.TraitScores == nil {
		return nil, malformed("missing traitScores")
	}
	var traits entities.TraitScores
	for _, f := range []struct {
		name string
		val  *float64
		dst  *int
	}{
		{"traitScores.selfMotivation", raw.TraitScores.SelfMotivation, &traits.SelfMotivation},
		{"traitScores.salesAptitude", raw.TraitScores.SalesAptitude, &traits.SalesAptitude},
		{"traitScores.reliability", raw.TraitScores.Reliability, &traits.Reliability},
		{"traitScores.dedication", raw.TraitScores.Dedication, &traits.Dedication},
	} {
		v, err := score(f.name, f.val)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	if raw.Strengths == nil {
		return nil, malformed("missing strengths")
	}
	if raw.RedFlags == nil {
		return nil, malformed("missing redFlags")
	}
	if raw.Recommendation == nil {
		return nil, malformed("missing recommendation")
	}
	rec := entities.Recommendation(strings.TrimSpace(*raw.Recommendation))
	if !rec.IsValid() {
		return nil, malformed("unknown recommendation %q", *raw.Recommendation)
	}

	focus := raw.InterviewFocus
	if focus == nil {
		focus = raw.ProblemAreas
	}

	return &entities.Evaluation{
		OverallScore:   overall,
		TraitScores:    traits,
		Strengths:      cleanList(*raw.Strengths),
		RedFlags:       cleanList(*raw.RedFlags),
		InterviewFocus: cleanList(focus),
		Recommendation: rec,
		Raw:            content,
	}, nil
}

// ParseFinding parses a vocal delivery response for question
func (p *Parser) ParseFinding(content string, question int) (*entities.VocalDeliveryFinding, error) {
	var raw rawFinding
	if err := json.Unmarshal([]byte(extractJSON(content)), &raw); err != nil {
		return nil, malformed("invalid JSON: %v", err)
	}

	confidence, err := enum("confidence", raw.Confidence, entities.LevelHigh, entities.LevelMedium, entities.LevelLow)
	if err != nil {
		return nil, err
	}
	enthusiasm, err := enum("enthusiasm", raw.Enthusiasm, entities.LevelHigh, entities.LevelMedium, entities.LevelLow)
	if err != nil {
		return nil, err
	}
	pace, err := enum("speechPace", raw.SpeechPace, "fast", "moderate", "slow")
	if err != nil {
		return nil, err
	}
	clarity, err := enum("clarity", raw.Clarity, "clear", "moderate", "unclear")
	if err != nil {
		return nil, err
	}
	naturalness, err := enum("naturalness", raw.Naturalness, "natural", "somewhat-rehearsed", "rehearsed")
	if err != nil {
		return nil, err
	}
	if raw.Insights == nil || strings.TrimSpace(*raw.Insights) == "" {
		return nil, malformed("missing insights")
	}

	return &entities.VocalDeliveryFinding{
		QuestionNumber: question,
		Confidence:     confidence,
		Enthusiasm:     enthusiasm,
		Tone:           cleanList(raw.Tone),
		SpeechPace:     pace,
		Clarity:        clarity,
		Naturalness:    naturalness,
		Insights:       strings.TrimSpace(*raw.Insights),
	}, nil
}

func malformed(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", usecaseErrors.ErrMalformedUpstream, fmt.Sprintf(format, args...))
}

func score(name string, v *float64) (int, error) {
	if v == nil {
		return 0, malformed("missing %s", name)
	}
	if math.IsNaN(*v) || *v < 0 || *v > 100 {
		return 0, malformed("%s out of range: %v", name, *v)
	}
	return int(math.Round(*v)), nil
}

func enum(name string, v *string, allowed ...string) (string, error) {
	if v == nil {
		return "", malformed("missing %s", name)
	}
	s := strings.ToLower(strings.TrimSpace(*v))
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", malformed("%s has unexpected value %q", name, *v)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
