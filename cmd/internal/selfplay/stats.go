package selfplay

import "math"

// binomTest returns the one-sided probability of seeing at least a
// successes out of a+b trials with per-trial probability p.
func binomTest(a, b int64, p float64) float64 {
	n := a + b
	if n == 0 {
		return 1
	}
	var total float64
	for k := a; k <= n; k++ {
		total += math.Exp(logChoose(n, k) +
			float64(k)*math.Log(p) +
			float64(n-k)*math.Log(1-p))
	}
	if total > 1 {
		return 1
	}
	return total
}

func logChoose(n, k int64) float64 {
	lnf, _ := math.Lgamma(float64(n + 1))
	lkf, _ := math.Lgamma(float64(k + 1))
	lnkf, _ := math.Lgamma(float64(n - k + 1))
	return lnf - lkf - lnkf
}
