package request

import "interlab/internal/usecase"

type NominationRequest struct {
	NomineeName      string   `json:"nominee_name" binding:"required"`
	Registration     string   `json:"registration" binding:"required"`
	CostCenter       string   `json:"cost_center"`
	AdmissionDate    string   `json:"admission_date"`
	SelectedValues   []string `json:"selected_values" binding:"required"`
	Justification    string   `json:"justification" binding:"required"`
	ProfilePhoto     string   `json:"profile_photo" binding:"required"`
	ValidationVideos []string `json:"validation_videos"`
}

func (r NominationRequest) ToInput() usecase.NominationInput {
	return usecase.NominationInput{
		NomineeName:      r.NomineeName,
		Registration:     r.Registration,
		CostCenter:       r.CostCenter,
		AdmissionDate:    r.AdmissionDate,
		SelectedValues:   r.SelectedValues,
		Justification:    r.Justification,
		ProfilePhoto:     r.ProfilePhoto,
		ValidationVideos: r.ValidationVideos,
	}
}
