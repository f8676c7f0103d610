package entities

// Nomination is a "Sangue Verde" culture-award candidacy.
//
// Nominations skip classification and scoring; they are voted on directly.
type Nomination struct {
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

// CultureValue is one of the company values a nomination can cite.
type CultureValue struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var CultureValues = []CultureValue{
	{ID: "DONO", Label: "ATITUDE DE DONO", Description: `"Cuidar Como se fosse meu"`},
	{ID: "ETICA", Label: "COMPETITIVIDADE COM ÉTICA E SUSTENTABILIDADE", Description: `"Paixão por vencer seguindo as regras do jogo"`},
	{ID: "INOVACAO", Label: "ADAPTABILIDADE, INOVAÇÃO, ARROJO & EMPREENDEDORISMO", Description: `"O possível é para todos, o impossível é com a gente"`},
	{ID: "EXCELENCIA", Label: "EXCELÊNCIA OPERACIONAL COM SEGURANÇA", Description: `"Fazer certo da 1ª vez; fazer seguro todas as vezes"`},
	{ID: "TIME", Label: "FORÇA DO TIME E INTERDEPENDÊNCIA", Description: `"Time que joga junto, ganha junto"`},
	{ID: "CLIENTE", Label: "SERVIR O CLIENTE", Description: `"Não basta atender, tem que surpreender"`},
	{ID: "SIMPLICIDADE", Label: "AUSTERIDADE E SIMPLICIDADE", Description: `"Fazemos mais com menos, ouvindo a todos em busca da melhor ideia"`},
}

func IsCultureValue(id string) bool {
	for _, v := range CultureValues {
		if v.ID == id {
			return true
		}
	}
	return false
}
