package domain

// Categorias dos insights gerados
const (
	InsightCategoryMarketing = "marketing"
	InsightCategoryPipeline  = "pipeline"
	InsightCategoryRevenue   = "revenue"
)

// Insight é uma observação em linguagem natural derivada dos KPIs, com um
// grau de confiança em [0.05, 0.95] e pontos de dados estruturados opcionais.
type Insight struct {
	ID         string         `json:"id"`
	Category   string         `json:"category"`
	Message    string         `json:"message"`
	Confidence float64        `json:"confidence"`
	DataPoints map[string]any `json:"data_points,omitempty"`
}
