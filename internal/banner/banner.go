// Package banner holds the promotional banner pool shown on the form page.
package banner

import (
	"math/rand/v2"
	"sync"
)

// Banner is one partner link shown above the form
type Banner struct {
	Link string
	Text string
	Sub  string
}

// Pool is the fixed set of banners a page load picks from
var Pool = []Banner{
	{
		Link: "https://link.coupang.com/a/dCrdiR",
		Text: "⌚️ 페이스/고도 측정의 필수품",
		Sub:  "가민(Garmin) GPS 워치 최저가 확인하기",
	},
	{
		Link: "https://link.coupang.com/a/dyj430",
		Text: "⚡️ 장거리 산행/러닝 에너지 보급",
		Sub:  "에너지젤 로켓배송",
	},
	{
		Link: "https://link.coupang.com/a/dCreW3",
		Text: "🦵 하산할 때 무릎이 걱정된다면?",
		Sub:  "잠스트 무릎 보호대",
	},
	{
		Link: "https://link.coupang.com/a/dCrhi0",
		Text: "🎒 트레일러닝 조끼/배낭 모음",
		Sub:  "살로몬/카멜백 베스트셀러 구경하기",
	},
}

// Source yields a uniform index in [0, n)
type Source interface {
	IntN(n int) int
}

// Pick returns one banner from pool chosen by src. An empty pool yields
// the zero Banner.
func Pick(pool []Banner, src Source) Banner {
	if len(pool) == 0 {
		return Banner{}
	}
	return pool[src.IntN(len(pool))]
}

// Picker is a concurrency-safe Pick over a fixed pool
type Picker struct {
	mu   sync.Mutex
	pool []Banner
	rng  *rand.Rand
}

// NewPicker returns a Picker over pool using rng. A nil rng is seeded
// randomly.
func NewPicker(pool []Banner, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Picker{pool: pool, rng: rng}
}

// Pick chooses one banner
func (p *Picker) Pick() Banner {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Pick(p.pool, p.rng)
}
