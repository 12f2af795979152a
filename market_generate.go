package ytd

import (
	"math/rand/v2"

	"github.com/etnz/ytd/date"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

// GenerateMarket simulates a price source over a range of days.
//
// Every security gets a base price drawn in [100, 300) and each day of r a
// price of base plus a standard normal tick, rounded to the cent. The same
// seed always produces the same market.
func GenerateMarket(seed uint64, r date.Range) *Market {
	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)
	ticks := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	m := NewMarket()
	for _, sec := range Securities() {
		base := decimal.NewFromInt(int64(100 + rng.IntN(200)))
		for day := range r.Forward() {
			tick := decimal.NewFromFloat(ticks.Rand())
			m.Set(day, sec, A(base.Add(tick)))
		}
	}
	return m
}
