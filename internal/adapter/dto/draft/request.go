package draft

// SaveDraftRequest is the saved state of an unfinished intake form
type SaveDraftRequest struct {
	CurrentStep        int               `json:"currentStep" validate:"omitempty,min=1,max=9"`
	FullName           string            `json:"fullName" validate:"max=255"`
	Email              string            `json:"email" validate:"max=255"`
	Phone              string            `json:"phone" validate:"max=50"`
	Location           string            `json:"location" validate:"max=255"`
	Availability       string            `json:"availability,omitempty" validate:"omitempty,oneof=full-time part-time weekends flexible"`
	AgeVerified        bool              `json:"ageVerified"`
	ProductComfort     string            `json:"productComfort,omitempty" validate:"omitempty,oneof=very-comfortable comfortable neutral somewhat-uncomfortable uncomfortable"`
	PreviousExperience string            `json:"previousExperience,omitempty"`
	Responses          map[string]string `json:"responses"`
	AudioRecorded      map[string]bool   `json:"audioRecorded"`
}
