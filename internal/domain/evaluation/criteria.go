// Package evaluation holds the committee scoring rules: the criterion weight
// table, the weighted-average scoring engine and idea classification.
package evaluation

// Rating scale accepted for each criterion.
const (
	MinRating = 1
	MaxRating = 3
)

// Criterion is a named evaluation criterion with its integer weight.
type Criterion struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// WeightTable is an ordered, fixed set of criteria. Order only affects how
// scores are listed in evaluation records.
type WeightTable []Criterion

// Criteria is the configured weight table. It never changes at runtime.
var Criteria = WeightTable{
	{ID: "GRAU_INOVACAO", Label: "Grau de Inovação", Weight: 4},
	{ID: "SEGURANCA_AMBIENTE", Label: "Segurança/Ambiente", Weight: 4},
	{ID: "REDUCAO_CUSTOS", Label: "Redução de Custos", Weight: 3},
	{ID: "PRODUTIVIDADE", Label: "Produtividade", Weight: 3},
	{ID: "FACILIDADE_APLICACAO", Label: "Facilidade de Aplicação", Weight: 2},
	{ID: "ESCALABILIDADE", Label: "Escalabilidade", Weight: 2},
	{ID: "INVESTIMENTO", Label: "Investimento", Weight: 1},
}

func (t WeightTable) TotalWeight() int {
	total := 0
	for _, c := range t {
		total += c.Weight
	}
	return total
}

func (t WeightTable) Has(id string) bool {
	for _, c := range t {
		if c.ID == id {
			return true
		}
	}
	return false
}
