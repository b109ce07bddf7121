package stats

// StreamStatistics tracks the arrival pattern and value distribution of
// a timestamped stream: inter-arrival intervals and sample values each
// feed their own accumulator.
type StreamStatistics struct {
	FirstArrivalTimestamp int64
	LastArrivalTimestamp  int64
	NumValues             uint64
	IntervalStats         *Welford[float64, int]
	ValueStats            *Welford[float64, int]
}

func NewStreamStatistics() *StreamStatistics {
	return &StreamStatistics{
		FirstArrivalTimestamp: -1,
		LastArrivalTimestamp:  -1,
		NumValues:             0,
		IntervalStats:         NewWelford[float64](),
		ValueStats:            NewWelford[float64](),
	}
}

func (stream *StreamStatistics) Append(timestamp int64, value float64) {
	if stream.FirstArrivalTimestamp == -1 {
		stream.FirstArrivalTimestamp = timestamp
	} else {
		interval := timestamp - stream.LastArrivalTimestamp
		stream.IntervalStats.Push(float64(interval))
	}

	stream.ValueStats.Push(value)
	stream.NumValues++
	stream.LastArrivalTimestamp = timestamp
}

// Merge folds another stream's statistics into this one. The interval
// between the two streams' boundary samples was never observed, so the
// merged interval statistics are approximate when the streams
// interleave in time.
func (stream *StreamStatistics) Merge(other *StreamStatistics) {
	if other.NumValues == 0 {
		return
	}

	stream.IntervalStats.Merge(other.IntervalStats)
	stream.ValueStats.Merge(other.ValueStats)

	if stream.NumValues == 0 {
		stream.FirstArrivalTimestamp = other.FirstArrivalTimestamp
		stream.LastArrivalTimestamp = other.LastArrivalTimestamp
		stream.NumValues = other.NumValues
		return
	}

	stream.NumValues += other.NumValues
	if other.FirstArrivalTimestamp < stream.FirstArrivalTimestamp {
		stream.FirstArrivalTimestamp = other.FirstArrivalTimestamp
	}
	if other.LastArrivalTimestamp > stream.LastArrivalTimestamp {
		stream.LastArrivalTimestamp = other.LastArrivalTimestamp
	}
}
