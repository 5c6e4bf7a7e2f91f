package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intake form steps: basic info, one step per question, then review.
const (
	StepBasicInfo     = 1
	StepFirstQuestion = 2
	StepReview        = StepFirstQuestion + QuestionCount
	TotalSteps        = StepReview
)

// FormDraft is the saved progress of an unfinished intake form
type FormDraft struct {
	ID                 string          `json:"id"`
	CurrentStep        int             `json:"currentStep"`
	FullName           string          `json:"fullName"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	Location           string          `json:"location"`
	Availability       Availability    `json:"availability,omitempty"`
	AgeVerified        bool            `json:"ageVerified"`
	ProductComfort     *ProductComfort `json:"productComfort,omitempty"`
	PreviousExperience string          `json:"previousExperience,omitempty"`
	Responses          Responses       `json:"responses"`
	AudioRecorded      map[string]bool `json:"audioRecorded"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

// NewFormDraft starts an empty draft at the first step
func NewFormDraft() *FormDraft {
	return &FormDraft{
		ID:            uuid.NewString(),
		CurrentStep:   StepBasicInfo,
		Responses:     Responses{},
		AudioRecorded: map[string]bool{},
		UpdatedAt:     time.Now().UTC(),
	}
}

// Normalize fills nil maps and clamps the current step
func (d *FormDraft) Normalize() {
	if d.Responses == nil {
		d.Responses = Responses{}
	}
	if d.AudioRecorded == nil {
		d.AudioRecorded = map[string]bool{}
	}
	if d.CurrentStep < StepBasicInfo {
		d.CurrentStep = StepBasicInfo
	}
	if d.CurrentStep > TotalSteps {
		d.CurrentStep = TotalSteps
	}
}

// StepComplete reports whether the given step has everything it needs.
// Step 1 needs name, email and phone. Each question step needs the answer
// and a recorded audio clip. The review step needs every prior step.
func (d *FormDraft) StepComplete(step int) bool {
	switch {
	case step == StepBasicInfo:
		return strings.TrimSpace(d.FullName) != "" &&
			strings.TrimSpace(d.Email) != "" &&
			strings.TrimSpace(d.Phone) != ""
	case step >= StepFirstQuestion && step < StepReview:
		key := QuestionKey(step - StepBasicInfo)
		return strings.TrimSpace(d.Responses[key]) != "" && d.AudioRecorded[key]
	case step == StepReview:
		for s := StepBasicInfo; s < StepReview; s++ {
			if !d.StepComplete(s) {
				return false
			}
		}
		return true
	}
	return false
}

// CanProceed returns the gating state of every step, keyed by step number
func (d *FormDraft) CanProceed() map[int]bool {
	gates := make(map[int]bool, TotalSteps)
	for step := StepBasicInfo; step <= TotalSteps; step++ {
		gates[step] = d.StepComplete(step)
	}
	return gates
}

// Complete reports whether the draft is ready for submission
func (d *FormDraft) Complete() bool {
	return d.StepComplete(StepReview)
}
