package stdlib

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

var ErrNoData = errors.New("statistics: no data")

func sortedCopy(xs []float64) []float64 {
	s := slices.Clone(xs)
	slices.Sort(s)
	return s
}

// Median averages the two middle values for even-length input.
func Median(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}
	s := sortedCopy(xs)
	n := len(s)
	if n%2 == 1 {
		return s[n/2], nil
	}
	return (s[n/2-1] + s[n/2]) / 2, nil
}

func MedianLow(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}
	s := sortedCopy(xs)
	return s[(len(s)-1)/2], nil
}

func MedianHigh(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}
	s := sortedCopy(xs)
	return s[len(s)/2], nil
}

// Mode returns the most frequent value, preferring the one seen first on
// ties.
func Mode(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrNoData
	}
	counts := make(map[float64]int, len(xs))
	best, bestN := xs[0], 0
	for _, x := range xs {
		counts[x]++
		if c := counts[x]; c > bestN {
			best, bestN = x, c
		}
	}
	return best, nil
}

// Quantiles cuts xs into n intervals of equal probability using the
// exclusive method, interpolating between neighbouring order statistics.
func Quantiles(xs []float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("statistics: n must be at least 1, got %d", n)
	}
	if len(xs) < 2 {
		return nil, ErrNoData
	}
	s := sortedCopy(xs)
	m := len(s) + 1
	out := make([]float64, 0, n-1)
	for i := 1; i < n; i++ {
		j := i * m / n
		j = min(max(j, 1), len(s)-1)
		delta := float64(i*m - j*n)
		out = append(out, (s[j-1]*(float64(n)-delta)+s[j]*delta)/float64(n))
	}
	return out, nil
}

type Central struct {
	Mean       float64 `json:"mean" yaml:"mean"`
	Median     float64 `json:"median" yaml:"median"`
	Mode       float64 `json:"mode" yaml:"mode"`
	MedianLow  float64 `json:"median_low" yaml:"median_low"`
	MedianHigh float64 `json:"median_high" yaml:"median_high"`
}

type Spread struct {
	Stdev     float64   `json:"stdev" yaml:"stdev"`
	Pstdev    float64   `json:"pstdev" yaml:"pstdev"`
	Variance  float64   `json:"variance" yaml:"variance"`
	Pvariance float64   `json:"pvariance" yaml:"pvariance"`
	Quantiles []float64 `json:"quantiles" yaml:"quantiles"`
}

type Additional struct {
	HarmonicMean  float64 `json:"harmonic_mean" yaml:"harmonic_mean"`
	GeometricMean float64 `json:"geometric_mean" yaml:"geometric_mean"`
}

type StatisticsResult struct {
	Central     Central    `json:"central" yaml:"central"`
	Spread      Spread     `json:"spread" yaml:"spread"`
	Additional  Additional `json:"additional" yaml:"additional"`
	Correlation float64    `json:"correlation" yaml:"correlation"`
}

func Statistics() (StatisticsResult, error) {
	var r StatisticsResult
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9, 10, 10, 10, 11, 13}

	var err error
	r.Central.Mean = stat.Mean(data, nil)
	if r.Central.Median, err = Median(data); err != nil {
		return r, err
	}
	if r.Central.Mode, err = Mode(data); err != nil {
		return r, err
	}
	if r.Central.MedianLow, err = MedianLow(data); err != nil {
		return r, err
	}
	if r.Central.MedianHigh, err = MedianHigh(data); err != nil {
		return r, err
	}

	pvar := stat.PopVariance(data, nil)
	r.Spread = Spread{
		Stdev:     stat.StdDev(data, nil),
		Pstdev:    math.Sqrt(pvar),
		Variance:  stat.Variance(data, nil),
		Pvariance: pvar,
	}
	if r.Spread.Quantiles, err = Quantiles(data, 4); err != nil {
		return r, err
	}

	r.Additional = Additional{
		HarmonicMean:  stat.HarmonicMean(data, nil),
		GeometricMean: stat.GeometricMean(data, nil),
	}

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	r.Correlation = stat.Correlation(x, y, nil)

	return r, nil
}
