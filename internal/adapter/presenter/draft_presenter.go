package presenter

import (
	draftDTO "github.com/johnquangdev/candidate-screening/internal/adapter/dto/draft"
	"github.com/johnquangdev/candidate-screening/internal/domain/entities"
)

// ToFormDraft converts a save request to a FormDraft entity under id
func ToFormDraft(id string, req *draftDTO.SaveDraftRequest) *entities.FormDraft {
	d := &entities.FormDraft{
		ID:                 id,
		CurrentStep:        req.CurrentStep,
		FullName:           req.FullName,
		Email:              req.Email,
		Phone:              req.Phone,
		Location:           req.Location,
		Availability:       entities.Availability(req.Availability),
		AgeVerified:        req.AgeVerified,
		PreviousExperience: req.PreviousExperience,
		Responses:          entities.Responses(req.Responses),
		AudioRecorded:      req.AudioRecorded,
	}
	if req.ProductComfort != "" {
		comfort := entities.ProductComfort(req.ProductComfort)
		d.ProductComfort = &comfort
	}
	return d
}

// ToDraftResponse converts a FormDraft entity to DraftResponse DTO
func ToDraftResponse(d *entities.FormDraft) *draftDTO.DraftResponse {
	if d == nil {
		return nil
	}

	resp := &draftDTO.DraftResponse{
		ID:                 d.ID,
		CurrentStep:        d.CurrentStep,
		TotalSteps:         entities.TotalSteps,
		FullName:           d.FullName,
		Email:              d.Email,
		Phone:              d.Phone,
		Location:           d.Location,
		Availability:       string(d.Availability),
		AgeVerified:        d.AgeVerified,
		PreviousExperience: d.PreviousExperience,
		Responses:          map[string]string(d.Responses),
		AudioRecorded:      d.AudioRecorded,
		CanProceed:         d.CanProceed(),
		Complete:           d.Complete(),
		UpdatedAt:          d.UpdatedAt,
	}
	if d.ProductComfort != nil {
		resp.ProductComfort = string(*d.ProductComfort)
	}
	if resp.Responses == nil {
		resp.Responses = map[string]string{}
	}
	if resp.AudioRecorded == nil {
		resp.AudioRecorded = map[string]bool{}
	}
	return resp
}
