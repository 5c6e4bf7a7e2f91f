package draft

import "time"

// DraftResponse is a saved draft with its step gating
type DraftResponse struct {
	ID                 string            `json:"id"`
	CurrentStep        int               `json:"currentStep"`
	TotalSteps         int               `json:"totalSteps"`
	FullName           string            `json:"fullName"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Location           string            `json:"location"`
	Availability       string            `json:"availability,omitempty"`
	AgeVerified        bool              `json:"ageVerified"`
	ProductComfort     string            `json:"productComfort,omitempty"`
	PreviousExperience string            `json:"previousExperience,omitempty"`
	Responses          map[string]string `json:"responses"`
	AudioRecorded      map[string]bool   `json:"audioRecorded"`
	CanProceed         map[int]bool      `json:"canProceed"`
	Complete           bool              `json:"complete"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}
