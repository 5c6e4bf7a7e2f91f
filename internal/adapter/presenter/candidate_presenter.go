package presenter

import (
	candidateDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/candidate"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
	pkgai "github.com/johnquangdev/candidate-screening/pkg/ai"
)

// recommendationColors mirrors the score band palette
var recommendationColors = map[entities.Recommendation]string{
	entities.RecommendationHire:   "green",
	entities.RecommendationMaybe:  "yellow",
	entities.RecommendationNoHire: "red",
}

// ToScoreResponse attaches the band and color to a score
func ToScoreResponse(score int) candidateDTO.ScoreResponse {
	band := entities.BandFor(score)
	return candidateDTO.ScoreResponse{
		Value: score,
		Band:  string(band),
		Color: band.Color(),
	}
}

// ToRecommendationBadge converts a verdict to its badge. Unknown verdicts
// render gray.
func ToRecommendationBadge(r entities.Recommendation) candidateDTO.BadgeResponse {
	color, ok := recommendationColors[r]
	if !ok {
		color = "gray"
	}
	return candidateDTO.BadgeResponse{Label: string(r), Color: color}
}

// ToVocalFindingResponses converts findings and attaches the question text
func ToVocalFindingResponses(findings []entities.VocalDeliveryFinding) []candidateDTO.VocalFindingResponse {
	out := make([]candidateDTO.VocalFindingResponse, 0, len(findings))
	for _, f := range findings {
		tone := f.Tone
		if tone == nil {
			tone = []string{}
		}
		out = append(out, candidateDTO.VocalFindingResponse{
			QuestionNumber:  f.QuestionNumber,
			Question:        entities.QuestionText(f.QuestionNumber),
			Confidence:      f.Confidence,
			Enthusiasm:      f.Enthusiasm,
			Tone:            tone,
			SpeechPace:      f.SpeechPace,
			Clarity:         f.Clarity,
			Naturalness:     f.Naturalness,
			Insights:        f.Insights,
			Transcript:      f.Transcript,
			DurationSeconds: f.DurationSeconds,
			Language:        f.Language,
		})
	}
	return out
}

// ToAnalysisResponse converts an Analysis entity to AnalysisResponse DTO
func ToAnalysisResponse(a *entities.Analysis) *candidateDTO.AnalysisResponse {
	if a == nil {
		return nil
	}

	traits := a.Traits()
	return &candidateDTO.AnalysisResponse{
		ID:           a.ID.String(),
		OverallScore: ToScoreResponse(a.OverallScore),
		TraitScores: candidateDTO.TraitScoresResponse{
			SelfMotivation: ToScoreResponse(traits.SelfMotivation),
			SalesAptitude:  ToScoreResponse(traits.SalesAptitude),
			Reliability:    ToScoreResponse(traits.Reliability),
			Dedication:     ToScoreResponse(traits.Dedication),
		},
		Strengths:         stringsOrEmpty(a.Strengths),
		RedFlags:          stringsOrEmpty(a.RedFlags),
		InterviewFocus:    stringsOrEmpty(a.InterviewFocus),
		Recommendation:    ToRecommendationBadge(a.Recommendation),
		AudioToneAnalysis: ToVocalFindingResponses(a.Findings()),
		ModelUsed:         a.ModelUsed,
		ProcessingTimeMs:  a.ProcessingTimeMs,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToCandidateSummary converts a Candidate to one admin table row
func ToCandidateSummary(c *entities.Candidate) *candidateDTO.CandidateSummaryResponse {
	if c == nil {
		return nil
	}

	resp := &candidateDTO.CandidateSummaryResponse{
		ID:           c.ID.String(),
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		Availability: string(c.Availability),
		HasAudio:     c.HasAudio(),
		CreatedAt:    c.CreatedAt,
	}

	// Include analysis if loaded
	if c.Analysis != nil {
		score := ToScoreResponse(c.Analysis.OverallScore)
		badge := ToRecommendationBadge(c.Analysis.Recommendation)
		resp.OverallScore = &score
		resp.Recommendation = &badge
	}
	return resp
}

// ToCandidateList converts the filtered candidate list
func ToCandidateList(candidates []*entities.Candidate, search string) *candidateDTO.CandidateListResponse {
	rows := make([]*candidateDTO.CandidateSummaryResponse, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, ToCandidateSummary(c))
	}
	return &candidateDTO.CandidateListResponse{
		Candidates: rows,
		Total:      len(rows),
		Search:     search,
	}
}

// ToCandidateDetail converts a candidate and its playback URLs to the
// admin detail view
func ToCandidateDetail(c *entities.Candidate, playback map[string]string) *candidateDTO.CandidateDetailResponse {
	if c == nil {
		return nil
	}
	if playback == nil {
		playback = map[string]string{}
	}

	answers := make([]candidateDTO.AnswerResponse, 0, entities.QuestionCount)
	for n := 1; n <= entities.QuestionCount; n++ {
		key := entities.QuestionKey(n)
		answers = append(answers, candidateDTO.AnswerResponse{
			QuestionNumber: n,
			Question:       entities.QuestionText(n),
			Answer:         c.Responses[key],
			AudioURL:       playback[key],
		})
	}

	resp := &candidateDTO.CandidateDetailResponse{
		ID:           c.ID.String(),
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		Location:     c.Location,
		Availability: string(c.Availability),
		AgeVerified:  c.AgeVerified,
		Answers:      answers,
		AudioURLs:    playback,
		Analysis:     ToAnalysisResponse(c.Analysis),
		CreatedAt:    c.CreatedAt,
	}
	if c.ProductComfort != nil {
		resp.ProductComfort = string(*c.ProductComfort)
	}
	if c.PreviousExperience != nil {
		resp.PreviousExperience = *c.PreviousExperience
	}
	return resp
}

// ToLocatorMap copies a locator map for rendering
func ToLocatorMap(locators entities.AudioLocators) map[string]string {
	out := make(map[string]string, len(locators))
	for k, v := range locators {
		out[k] = v
	}
	return out
}

// ToTranscriptionResponse converts a transcription result
func ToTranscriptionResponse(t *pkgai.Transcription) *candidateDTO.TranscriptionResponse {
	if t == nil {
		return nil
	}
	return &candidateDTO.TranscriptionResponse{
		Text:            t.Text,
		DurationSeconds: t.DurationSeconds,
		Language:        t.Language,
	}
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
