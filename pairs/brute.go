package pairs

// BruteForce counts pairs by comparing every point of a against every point
// of b. It is exact, allocation-free per query and serves as the reference
// for the other backends.
type BruteForce struct{}

var _ Counter = BruteForce{}

// Count implements Counter.
func (BruteForce) Count(a, b Points, edges []float64, period Period) ([]float64, error) {
	return runCount(buildBrute, a, b, edges, period)
}

// JackknifeCount implements Counter.
func (BruteForce) JackknifeCount(a, b Points, edges []float64, period Period,
	labelsA, labelsB []int, nLabels int) ([][]float64, error) {
	return runJackknifeCount(buildBrute, a, b, edges, period, labelsA, labelsB, nLabels)
}

// SpecificWeightedCount implements Counter.
func (BruteForce) SpecificWeightedCount(a, b Points, edges []float64, period Period,
	weightsA, weightsB []float64) ([][]float64, error) {
	return runSpecificWeightedCount(buildBrute, a, b, edges, period, weightsA, weightsB)
}

type bruteSearch struct {
	pts    Points
	period Period
	r2max  float64
}

func buildBrute(b Points, period Period, r2max float64) searcher {
	return bruteSearch{pts: b, period: period, r2max: r2max}
}

func (s bruteSearch) visit(q []float64, fn func(j int, d2 float64)) {
	for j, p := range s.pts {
		if d2 := sqDist(q, p, s.period); d2 <= s.r2max {
			fn(j, d2)
		}
	}
}
