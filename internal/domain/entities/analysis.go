package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recommendation is the hiring verdict of an evaluation
type Recommendation string

const (
	RecommendationHire   Recommendation = "Hire"
	RecommendationMaybe  Recommendation = "Maybe"
	RecommendationNoHire Recommendation = "No-Hire"
)

// IsValid reports whether r is one of the three verdicts
func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendationHire, RecommendationMaybe, RecommendationNoHire:
		return true
	}
	return false
}

// TraitScores holds the four named trait ratings (0-100 each)
type TraitScores struct {
	SelfMotivation int `json:"selfMotivation"`
	SalesAptitude  int `json:"salesAptitude"`
	Reliability    int `json:"reliability"`
	Dedication     int `json:"dedication"`
}

// Rating levels used by vocal delivery findings
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// VocalDeliveryFinding rates how one recorded answer was delivered
type VocalDeliveryFinding struct {
	QuestionNumber  int      `json:"questionNumber"`
	Confidence      string   `json:"confidence"` // high, medium, low
	Enthusiasm      string   `json:"enthusiasm"` // high, medium, low
	Tone            []string `json:"tone"`
	SpeechPace      string   `json:"speechPace"`  // fast, moderate, slow
	Clarity         string   `json:"clarity"`     // clear, moderate, unclear
	Naturalness     string   `json:"naturalness"` // natural, somewhat-rehearsed, rehearsed
	Insights        string   `json:"insights"`
	Transcript      string   `json:"transcript,omitempty"`
	DurationSeconds float64  `json:"durationSeconds,omitempty"`
	Language        string   `json:"language,omitempty"`
}

// Analysis is the AI evaluation of one candidate
type Analysis struct {
	ID                uuid.UUID                                 `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CandidateID       uuid.UUID                                 `json:"candidate_id" gorm:"type:uuid;not null;uniqueIndex"`
	OverallScore      int                                       `json:"overall_score" gorm:"not null"`
	TraitScores       datatypes.JSONType[TraitScores]           `json:"trait_scores" gorm:"type:jsonb;not null"`
	Strengths         datatypes.JSONSlice[string]               `json:"strengths" gorm:"type:jsonb;not null"`
	RedFlags          datatypes.JSONSlice[string]               `json:"red_flags" gorm:"type:jsonb;not null"`
	InterviewFocus    datatypes.JSONSlice[string]               `json:"interview_focus,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	Recommendation    Recommendation                            `json:"recommendation" gorm:"type:varchar(10);not null"`
	AudioToneAnalysis datatypes.JSONSlice[VocalDeliveryFinding] `json:"audio_tone_analysis" gorm:"type:jsonb;not null;default:'[]'"`
	RawAIResponse     string                                    `json:"raw_ai_response,omitempty" gorm:"type:text"`
	ModelUsed         string                                    `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	ProcessingTimeMs  int64                                     `json:"processing_time_ms,omitempty"`
	CreatedAt         time.Time                                 `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time                                 `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Analysis) TableName() string {
	return "analyses"
}

// Evaluation is a parsed model verdict not yet bound to a candidate
type Evaluation struct {
	OverallScore   int
	TraitScores    TraitScores
	Strengths      []string
	RedFlags       []string
	InterviewFocus []string
	Recommendation Recommendation
	Raw            string
}

// NewAnalysis binds an evaluation to a candidate
func NewAnalysis(candidateID uuid.UUID, eval *Evaluation, model string, took time.Duration) *Analysis {
	now := time.Now().UTC()
	return &Analysis{
		ID:                uuid.New(),
		CandidateID:       candidateID,
		OverallScore:      eval.OverallScore,
		TraitScores:       datatypes.NewJSONType(eval.TraitScores),
		Strengths:         datatypes.NewJSONSlice(nonNil(eval.Strengths)),
		RedFlags:          datatypes.NewJSONSlice(nonNil(eval.RedFlags)),
		InterviewFocus:    datatypes.NewJSONSlice(nonNil(eval.InterviewFocus)),
		Recommendation:    eval.Recommendation,
		AudioToneAnalysis: datatypes.NewJSONSlice([]VocalDeliveryFinding{}),
		RawAIResponse:     eval.Raw,
		ModelUsed:         model,
		ProcessingTimeMs:  took.Milliseconds(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Traits returns the decoded trait scores
func (a *Analysis) Traits() TraitScores {
	return a.TraitScores.Data()
}

// Findings returns the vocal delivery findings, never nil
func (a *Analysis) Findings() []VocalDeliveryFinding {
	if a.AudioToneAnalysis == nil {
		return []VocalDeliveryFinding{}
	}
	return a.AudioToneAnalysis
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ScoreBand is the severity bucket of a 0-100 score
type ScoreBand string

const (
	ScoreBandHigh   ScoreBand = "high"
	ScoreBandMedium ScoreBand = "medium"
	ScoreBandLow    ScoreBand = "low"
)

// Band thresholds on the 0-100 scale
const (
	HighScoreThreshold   = 80
	MediumScoreThreshold = 60
)

// BandFor maps a score to its band: >= 80 high, >= 60 medium, otherwise low.
func BandFor(score int) ScoreBand {
	switch {
	case score >= HighScoreThreshold:
		return ScoreBandHigh
	case score >= MediumScoreThreshold:
		return ScoreBandMedium
	default:
		return ScoreBandLow
	}
}

// Color is the dashboard color of the band
func (b ScoreBand) Color() string {
	switch b {
	case ScoreBandHigh:
		return "green"
	case ScoreBandMedium:
		return "yellow"
	default:
		return "red"
	}
}
