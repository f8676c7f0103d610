package response

import "interlab/internal/domain/entities"

type NominationResponse struct {
	ID               string   `json:"id"`
	NomineeName      string   `json:"nominee_name"`
	Registration     string   `json:"registration"`
	CostCenter       string   `json:"cost_center"`
	AdmissionDate    string   `json:"admission_date"`
	SelectedValues   []string `json:"selected_values"`
	Justification    string   `json:"justification"`
	ProfilePhoto     string   `json:"profile_photo"`
	ValidationVideos []string `json:"validation_videos"`
	NominatorName    string   `json:"nominator_name"`
	NominatorID      string   `json:"nominator_id"`
	Year             int      `json:"year"`
	Quarter          int      `json:"quarter"`
	DateSubmitted    string   `json:"date_submitted"`
	Votes            int      `json:"votes"`
}

func FromNomination(n entities.Nomination) NominationResponse {
	return NominationResponse{
		ID:               n.ID,
		NomineeName:      n.NomineeName,
		Registration:     n.Registration,
		CostCenter:       n.CostCenter,
		AdmissionDate:    n.AdmissionDate,
		SelectedValues:   append([]string{}, n.SelectedValues...),
		Justification:    n.Justification,
		ProfilePhoto:     n.ProfilePhoto,
		ValidationVideos: append([]string{}, n.ValidationVideos...),
		NominatorName:    n.NominatorName,
		NominatorID:      n.NominatorID,
		Year:             n.Year,
		Quarter:          n.Quarter,
		DateSubmitted:    n.DateSubmitted,
		Votes:            n.Votes,
	}
}

func FromNominations(ns []entities.Nomination) []NominationResponse {
	out := make([]NominationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNomination(n))
	}
	return out
}

type CultureValueResponse struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

func FromCultureValues(vs []entities.CultureValue) []CultureValueResponse {
	out := make([]CultureValueResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, CultureValueResponse(v))
	}
	return out
}
