package generating

import (
	"math"
	"math/rand"
)

// rng encapsula as distribuições usadas pelo gerador. Cada tabela cria a sua
// própria instância a partir da seed, então a sequência de cada tabela não
// depende da ordem em que as tabelas são geradas.
type rng struct {
	r *rand.Rand
}

func newRNG(seed int64) *rng {
	return &rng{r: rand.New(rand.NewSource(seed))}
}

// normal amostra de uma distribuição normal com média e desvio padrão dados
func (g *rng) normal(mean, stddev float64) float64 {
	return g.r.NormFloat64()*stddev + mean
}

// logNormal amostra de uma log-normal parametrizada pela mediana e sigma
func (g *rng) logNormal(median, sigma float64) float64 {
	return math.Exp(g.normal(math.Log(median), sigma))
}

// uniform amostra uniformemente do intervalo [min, max)
func (g *rng) uniform(min, max float64) float64 {
	return min + g.r.Float64()*(max-min)
}

// chance retorna um valor uniforme em [0, 1)
func (g *rng) chance() float64 {
	return g.r.Float64()
}

// between retorna um inteiro uniforme no intervalo fechado [min, max]
func (g *rng) between(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// pick escolhe um elemento uniformemente da lista
func (g *rng) pick(values []string) string {
	return values[g.r.Intn(len(values))]
}
