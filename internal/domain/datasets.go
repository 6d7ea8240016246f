package domain

// Datasets agrupa as quatro tabelas produzidas pelo gerador. As tabelas são
// tratadas como imutáveis: a camada de analytics apenas deriva novos valores.
type Datasets struct {
	Marketing  []MarketingRecord `json:"marketing"`
	Pipeline   []PipelineDeal    `json:"pipeline"`
	Revenue    []RevenueCustomer `json:"revenue"`
	Benchmarks []Benchmark       `json:"benchmarks"`
}
