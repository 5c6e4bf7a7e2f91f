package candidate

import "time"

// SubmitApplicationResponse is always returned by the intake endpoint,
// success or not
type SubmitApplicationResponse struct {
	Success       bool     `json:"success"`
	CandidateID   string   `json:"candidateId,omitempty"`
	Error         string   `json:"error,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// ScoreResponse is a score with its dashboard band
type ScoreResponse struct {
	Value int    `json:"value"`
	Band  string `json:"band"`
	Color string `json:"color"`
}

// BadgeResponse is the recommendation badge
type BadgeResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// TraitScoresResponse holds the four banded trait scores
type TraitScoresResponse struct {
	SelfMotivation ScoreResponse `json:"selfMotivation"`
	SalesAptitude  ScoreResponse `json:"salesAptitude"`
	Reliability    ScoreResponse `json:"reliability"`
	Dedication     ScoreResponse `json:"dedication"`
}

// VocalFindingResponse is the rated delivery of one recorded answer
type VocalFindingResponse struct {
	QuestionNumber  int      `json:"questionNumber"`
	Question        string   `json:"question"`
	Confidence      string   `json:"confidence"`
	Enthusiasm      string   `json:"enthusiasm"`
	Tone            []string `json:"tone"`
	SpeechPace      string   `json:"speechPace,omitempty"`
	Clarity         string   `json:"clarity,omitempty"`
	Naturalness     string   `json:"naturalness,omitempty"`
	Insights        string   `json:"insights"`
	Transcript      string   `json:"transcript,omitempty"`
	DurationSeconds float64  `json:"durationSeconds,omitempty"`
	Language        string   `json:"language,omitempty"`
}

// AnalysisResponse is a candidate evaluation as the dashboard shows it
type AnalysisResponse struct {
	ID                string                 `json:"id"`
	OverallScore      ScoreResponse          `json:"overallScore"`
	TraitScores       TraitScoresResponse    `json:"traitScores"`
	Strengths         []string               `json:"strengths"`
	RedFlags          []string               `json:"redFlags"`
	InterviewFocus    []string               `json:"interviewFocus"`
	Recommendation    BadgeResponse          `json:"recommendation"`
	AudioToneAnalysis []VocalFindingResponse `json:"audioToneAnalysis"`
	ModelUsed         string                 `json:"modelUsed,omitempty"`
	ProcessingTimeMs  int64                  `json:"processingTimeMs,omitempty"`
	CreatedAt         time.Time              `json:"createdAt"`
	UpdatedAt         time.Time              `json:"updatedAt"`
}

// CandidateSummaryResponse is one row of the admin candidate table
type CandidateSummaryResponse struct {
	ID             string         `json:"id"`
	FullName       string         `json:"fullName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Location       string         `json:"location"`
	Availability   string         `json:"availability"`
	HasAudio       bool           `json:"hasAudio"`
	OverallScore   *ScoreResponse `json:"overallScore,omitempty"`
	Recommendation *BadgeResponse `json:"recommendation,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// CandidateListResponse is the admin candidate table
type CandidateListResponse struct {
	Candidates []*CandidateSummaryResponse `json:"candidates"`
	Total      int                         `json:"total"`
	Search     string                      `json:"search,omitempty"`
}

// AnswerResponse pairs a question with the candidate's answer
type AnswerResponse struct {
	QuestionNumber int    `json:"questionNumber"`
	Question       string `json:"question"`
	Answer         string `json:"answer"`
	AudioURL       string `json:"audioUrl,omitempty"`
}

// CandidateDetailResponse is the admin detail view of one candidate
type CandidateDetailResponse struct {
	ID                 string            `json:"id"`
	FullName           string            `json:"fullName"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Location           string            `json:"location"`
	Availability       string            `json:"availability"`
	AgeVerified        bool              `json:"ageVerified"`
	ProductComfort     string            `json:"productComfort,omitempty"`
	PreviousExperience string            `json:"previousExperience,omitempty"`
	Answers            []AnswerResponse  `json:"answers"`
	AudioURLs          map[string]string `json:"audioUrls"`
	Analysis           *AnalysisResponse `json:"analysis,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
}

// UploadAudioResponse reports the stored recordings of a candidate
type UploadAudioResponse struct {
	AudioURLs map[string]string `json:"audioUrls"`
	Failed    []int             `json:"failed,omitempty"`
}

// SyncAudioResponse reports the locator map rebuilt from storage
type SyncAudioResponse struct {
	AudioURLs map[string]string `json:"audioUrls"`
	Synced    int               `json:"synced"`
}

// SkippedQuestionResponse is a recording the tone run could not rate
type SkippedQuestionResponse struct {
	QuestionNumber int    `json:"questionNumber"`
	Reason         string `json:"reason"`
}

// ToneAnalysisResponse summarizes one vocal delivery run
type ToneAnalysisResponse struct {
	Analyzed int                       `json:"analyzed"`
	Findings []VocalFindingResponse    `json:"findings"`
	Skipped  []SkippedQuestionResponse `json:"skipped"`
}

// DeleteCandidateResponse reports a deletion
type DeleteCandidateResponse struct {
	ID              string   `json:"id"`
	Deleted         bool     `json:"deleted"`
	StorageWarnings []string `json:"storageWarnings,omitempty"`
}

// TranscriptionResponse is the text of one recorded answer
type TranscriptionResponse struct {
	Text            string  `json:"text"`
	DurationSeconds float64 `json:"durationSeconds"`
	Language        string  `json:"language,omitempty"`
}
