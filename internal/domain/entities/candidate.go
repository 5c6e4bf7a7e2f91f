package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Availability is the candidate's declared working availability
type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityWeekends Availability = "weekends"
	AvailabilityFlexible Availability = "flexible"
)

// IsValid reports whether a is a known availability
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityWeekends, AvailabilityFlexible:
		return true
	}
	return false
}

// ProductComfort is how comfortable the candidate is with the product
type ProductComfort string

const (
	ComfortVery                  ProductComfort = "very-comfortable"
	ComfortComfortable           ProductComfort = "comfortable"
	ComfortNeutral               ProductComfort = "neutral"
	ComfortSomewhatUncomfortable ProductComfort = "somewhat-uncomfortable"
	ComfortUncomfortable         ProductComfort = "uncomfortable"
)

// IsValid reports whether c is a known comfort level
func (c ProductComfort) IsValid() bool {
	switch c {
	case ComfortVery, ComfortComfortable, ComfortNeutral, ComfortSomewhatUncomfortable, ComfortUncomfortable:
		return true
	}
	return false
}

// Responses maps question keys to the candidate's answers
type Responses map[string]string

// Missing returns the question keys with no answer, in question order.
func (r Responses) Missing() []string {
	var missing []string
	for _, key := range QuestionKeys() {
		if strings.TrimSpace(r[key]) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Scan implements sql.Scanner interface for GORM
func (r *Responses) Scan(value interface{}) error {
	return scanJSONMap(value, (*map[string]string)(r))
}

// Value implements driver.Valuer interface for GORM
func (r Responses) Value() (driver.Value, error) {
	return valueJSONMap(r)
}

// AudioLocators maps question keys to stored audio object keys
type AudioLocators map[string]string

// Scan implements sql.Scanner interface for GORM
func (a *AudioLocators) Scan(value interface{}) error {
	return scanJSONMap(value, (*map[string]string)(a))
}

// Value implements driver.Valuer interface for GORM
func (a AudioLocators) Value() (driver.Value, error) {
	return valueJSONMap(a)
}

// Questions returns the question numbers that have a locator, ascending.
func (a AudioLocators) Questions() []int {
	var numbers []int
	for n := 1; n <= QuestionCount; n++ {
		if strings.TrimSpace(a[QuestionKey(n)]) != "" {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func scanJSONMap(value interface{}, dst *map[string]string) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*dst = map[string]string{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported jsonb source %T", value)
	}
	m := map[string]string{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}
	*dst = m
	return nil
}

func valueJSONMap(m map[string]string) (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Candidate is one submitted application
type Candidate struct {
	ID                 uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FullName           string          `json:"full_name" gorm:"type:varchar(255);not null"`
	Email              string          `json:"email" gorm:"type:varchar(255);not null;index"`
	Phone              string          `json:"phone" gorm:"type:varchar(50);not null"`
	Location           string          `json:"location" gorm:"type:varchar(255);not null"`
	Availability       Availability    `json:"availability" gorm:"type:varchar(20);not null"`
	AgeVerified        bool            `json:"age_verified" gorm:"not null;default:false"`
	ProductComfort     *ProductComfort `json:"product_comfort,omitempty" gorm:"type:varchar(30)"`
	PreviousExperience *string         `json:"previous_experience,omitempty" gorm:"type:text"`
	Responses          Responses       `json:"responses" gorm:"type:jsonb;not null"`
	AudioURLs          AudioLocators   `json:"audio_urls" gorm:"column:audio_urls;type:jsonb;not null;default:'{}'"`
	CreatedAt          time.Time       `json:"created_at" gorm:"autoCreateTime"`

	Analysis *Analysis `json:"analysis,omitempty" gorm:"foreignKey:CandidateID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (Candidate) TableName() string {
	return "candidates"
}

// CandidateProfile carries the intake fields of a new candidate
type CandidateProfile struct {
	FullName           string
	Email              string
	Phone              string
	Location           string
	Availability       Availability
	AgeVerified        bool
	ProductComfort     *ProductComfort
	PreviousExperience *string
}

// NewCandidate creates a candidate from a validated profile and answers
func NewCandidate(profile CandidateProfile, responses Responses) *Candidate {
	answers := make(Responses, QuestionCount)
	for _, key := range QuestionKeys() {
		answers[key] = strings.TrimSpace(responses[key])
	}
	return &Candidate{
		ID:                 uuid.New(),
		FullName:           strings.TrimSpace(profile.FullName),
		Email:              strings.TrimSpace(profile.Email),
		Phone:              strings.TrimSpace(profile.Phone),
		Location:           strings.TrimSpace(profile.Location),
		Availability:       profile.Availability,
		AgeVerified:        profile.AgeVerified,
		ProductComfort:     profile.ProductComfort,
		PreviousExperience: profile.PreviousExperience,
		Responses:          answers,
		AudioURLs:          AudioLocators{},
		CreatedAt:          time.Now().UTC(),
	}
}

// MatchesSearch reports whether the query is a case-insensitive substring of
// the candidate's name, email or location. An empty query matches everything.
func (c *Candidate) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.FullName), q) ||
		strings.Contains(strings.ToLower(c.Email), q) ||
		strings.Contains(strings.ToLower(c.Location), q)
}

// HasAudio reports whether any answer has a stored recording
func (c *Candidate) HasAudio() bool {
	return len(c.AudioURLs.Questions()) > 0
}
