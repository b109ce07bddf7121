package stats

import "math"

// Number covers the value and weight types the accumulator works with.
// Every pair of these types converts between each other, so weights can
// always be folded into the value arithmetic.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Welford computes the running mean and variance of a stream of samples
// in a single pass, using Welford's online algorithm with West's
// extension for frequency weights. T is the sample type, W the weight
// type. Each instance assumes a single writer; combine per-writer
// accumulators with Merge.
type Welford[T, W Number] struct {
	mean   T
	seeded bool
	total  W
	msq    T
}

// NewWelford creates an empty unweighted accumulator. Every pushed
// sample counts with weight 1.
func NewWelford[T Number]() *Welford[T, int] {
	return &Welford[T, int]{}
}

// NewWeightedWelford creates an empty accumulator for samples carrying
// caller-supplied weights. Weights are treated as frequencies (repeat
// counts); negative or NaN weights are not rejected and produce
// meaningless results.
func NewWeightedWelford[T, W Number]() *Welford[T, W] {
	return &Welford[T, W]{}
}

// Push adds a sample with weight 1.
func (welford *Welford[T, W]) Push(value T) {
	welford.PushWeighted(value, 1)
}

// PushWeighted adds a sample with the given weight.
func (welford *Welford[T, W]) PushWeighted(value T, weight W) {
	welford.total += weight

	if !welford.seeded {
		welford.mean = value
		welford.seeded = true
	}

	delta := value - welford.mean
	weightedDelta := delta * T(weight)
	welford.mean += weightedDelta / T(welford.total)

	// delta2 must use the already-updated mean, or msq drifts.
	delta2 := value - welford.mean
	welford.msq += weightedDelta * delta2
}

// Mean returns the running mean, or false if no samples were pushed.
func (welford *Welford[T, W]) Mean() (T, bool) {
	if !welford.seeded {
		return 0, false
	}
	return welford.mean, true
}

// Var returns the Bessel-corrected sample variance, treating weights as
// frequencies. It is undefined until the accumulated weight exceeds one.
func (welford *Welford[T, W]) Var() (T, bool) {
	if welford.total <= 1 {
		return 0, false
	}
	return welford.msq / (T(welford.total) - 1), true
}

// PopulationVariance returns the biased (population) variance.
func (welford *Welford[T, W]) PopulationVariance() (T, bool) {
	if welford.total == 0 {
		return 0, false
	}
	return welford.msq / T(welford.total), true
}

// StdDev returns the sample standard deviation.
func (welford *Welford[T, W]) StdDev() (T, bool) {
	variance, ok := welford.Var()
	if !ok {
		return 0, false
	}
	return T(math.Sqrt(float64(variance))), true
}

// CV returns the coefficient of variation, the sample standard
// deviation divided by the mean.
func (welford *Welford[T, W]) CV() (T, bool) {
	sd, ok := welford.StdDev()
	if !ok {
		return 0, false
	}
	return sd / welford.mean, true
}

// Total returns the accumulated weight. For unweighted accumulators
// this is the number of samples.
func (welford *Welford[T, W]) Total() W {
	return welford.total
}

// Reset returns the accumulator to its empty state.
func (welford *Welford[T, W]) Reset() {
	welford.mean = 0
	welford.seeded = false
	welford.total = 0
	welford.msq = 0
}

// Merge folds another accumulator's state into this one, yielding the
// statistics of the two underlying streams observed as one. The other
// accumulator is left untouched.
//
// WARN: the two-group combination can lose precision when the groups
// have very different means or weights, see
// <https://en.wikipedia.org/wiki/Algorithms_for_calculating_variance#Parallel_algorithm>.
func (welford *Welford[T, W]) Merge(other *Welford[T, W]) {
	weight := other.total
	if weight == 0 {
		return
	}
	if welford.total == 0 {
		*welford = *other
		return
	}

	delta := other.mean - welford.mean
	total := welford.total + weight
	weightedDelta := delta * T(weight)
	meanCorr := weightedDelta / T(total)

	welford.mean += meanCorr
	welford.msq += other.msq + delta*T(welford.total)*meanCorr
	welford.total = total
}
