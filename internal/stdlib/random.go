package stdlib

import (
	crand "crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"math/big"
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat/distuv"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Choices draws k items with replacement. When weights is non-nil it must
// have one non-negative entry per item.
func Choices[T any](rng *rand.Rand, items []T, weights []float64, k int) []T {
	out := make([]T, 0, k)
	if len(items) == 0 {
		return out
	}
	var cum []float64
	if weights != nil {
		cum = make([]float64, len(weights))
		total := 0.0
		for i, w := range weights {
			total += w
			cum[i] = total
		}
	}
	for range k {
		if cum == nil {
			out = append(out, items[rng.IntN(len(items))])
			continue
		}
		x := rng.Float64() * cum[len(cum)-1]
		i := 0
		for i < len(cum)-1 && cum[i] <= x {
			i++
		}
		out = append(out, items[i])
	}
	return out
}

// Sample draws k distinct items. It panics when k exceeds len(items).
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	return lo.Map(rng.Perm(len(items))[:k], func(i, _ int) T { return items[i] })
}

func RandomString(rng *rand.Rand, n int) string {
	var b strings.Builder
	for _, c := range Choices(rng, []byte(alphanumeric), nil, n) {
		b.WriteByte(c)
	}
	return b.String()
}

type BasicRandom struct {
	Random    float64 `json:"random" yaml:"random"`
	Uniform   float64 `json:"uniform" yaml:"uniform"`
	Randint   int     `json:"randint" yaml:"randint"`
	Randrange int     `json:"randrange" yaml:"randrange"`
}

type ChoiceResult struct {
	Single   string   `json:"single" yaml:"single"`
	Multiple []string `json:"multiple" yaml:"multiple"`
	Sample   []string `json:"sample" yaml:"sample"`
	Weighted []string `json:"weighted" yaml:"weighted"`
}

type Distributions struct {
	Gauss        float64 `json:"gauss" yaml:"gauss"`
	Triangular   float64 `json:"triangular" yaml:"triangular"`
	Betavariate  float64 `json:"betavariate" yaml:"betavariate"`
	Expovariate  float64 `json:"expovariate" yaml:"expovariate"`
	Gammavariate float64 `json:"gammavariate" yaml:"gammavariate"`
}

type Secure struct {
	TokenHex     string `json:"token_hex" yaml:"token_hex"`
	TokenURLSafe string `json:"token_urlsafe" yaml:"token_urlsafe"`
	Randbits     uint32 `json:"randbits" yaml:"randbits"`
	SecureChoice string `json:"secure_choice" yaml:"secure_choice"`
}

type RandomResult struct {
	Basic         BasicRandom   `json:"basic" yaml:"basic"`
	Choice        ChoiceResult  `json:"choice" yaml:"choice"`
	Shuffled      []int         `json:"shuffled" yaml:"shuffled"`
	Distributions Distributions `json:"distributions" yaml:"distributions"`
	RandomString  string        `json:"random_string" yaml:"random_string"`
	Secure        Secure        `json:"secure" yaml:"secure"`
}

// Random draws from a generator seeded with seed, so everything except the
// Secure section repeats for the same seed.
func Random(seed uint64) (RandomResult, error) {
	var r RandomResult
	src := rand.NewPCG(seed, seed)
	rng := rand.New(src)

	r.Basic = BasicRandom{
		Random:    rng.Float64(),
		Uniform:   1 + rng.Float64()*9,
		Randint:   rng.IntN(10) + 1,
		Randrange: rng.IntN(5) * 2,
	}

	fruits := []string{"apple", "banana", "orange", "grape", "kiwi"}
	r.Choice = ChoiceResult{
		Single:   fruits[rng.IntN(len(fruits))],
		Multiple: Choices(rng, fruits, nil, 3),
		Sample:   Sample(rng, fruits, 3),
		Weighted: Choices(rng, fruits, []float64{10, 5, 5, 2, 1}, 3),
	}

	r.Shuffled = lo.RangeFrom(1, 10)
	rng.Shuffle(len(r.Shuffled), func(i, j int) {
		r.Shuffled[i], r.Shuffled[j] = r.Shuffled[j], r.Shuffled[i]
	})

	r.Distributions = Distributions{
		Gauss:        distuv.Normal{Mu: 0, Sigma: 1, Src: src}.Rand(),
		Triangular:   distuv.NewTriangle(0, 10, 5, src).Rand(),
		Betavariate:  distuv.Beta{Alpha: 2, Beta: 5, Src: src}.Rand(),
		Expovariate:  distuv.Exponential{Rate: 1.0 / 5, Src: src}.Rand(),
		Gammavariate: distuv.Gamma{Alpha: 2, Beta: 1, Src: src}.Rand(),
	}

	r.RandomString = RandomString(rng, 10)

	var err error
	r.Secure, err = secure(fruits)
	return r, err
}

func secure(choices []string) (Secure, error) {
	var s Secure
	buf := make([]byte, 16)
	if _, err := crand.Read(buf); err != nil {
		return s, err
	}
	s.TokenHex = hex.EncodeToString(buf)

	if _, err := crand.Read(buf); err != nil {
		return s, err
	}
	s.TokenURLSafe = base64.RawURLEncoding.EncodeToString(buf)

	if _, err := crand.Read(buf[:4]); err != nil {
		return s, err
	}
	s.Randbits = binary.BigEndian.Uint32(buf[:4])

	n, err := crand.Int(crand.Reader, big.NewInt(int64(len(choices))))
	if err != nil {
		return s, err
	}
	s.SecureChoice = choices[n.Int64()]
	return s, nil
}
