package candidate

// SubmitApplicationRequest is the completed intake form
type SubmitApplicationRequest struct {
	FullName           string            `json:"fullName"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Location           string            `json:"location"`
	Availability       string            `json:"availability"`
	AgeVerified        bool              `json:"ageVerified"`
	ProductComfort     string            `json:"productComfort,omitempty"`
	PreviousExperience string            `json:"previousExperience,omitempty"`
	Responses          map[string]string `json:"responses"`
	DraftID            string            `json:"draftId,omitempty"`
}

// ListCandidatesRequest represents query parameters for the admin list
type ListCandidatesRequest struct {
	Search string `query:"search" validate:"max=200"`
}
