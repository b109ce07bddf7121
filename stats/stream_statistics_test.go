package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStreamStatistics(t *testing.T) {
	stream := NewStreamStatistics()
	assert.Equal(t, uint64(0), stream.NumValues)

	stream.Append(0, 1.0)
	stream.Append(10, 3.0)
	stream.Append(20, 5.0)

	assert.Equal(t, uint64(3), stream.NumValues)
	assert.Equal(t, int64(0), stream.FirstArrivalTimestamp)
	assert.Equal(t, int64(20), stream.LastArrivalTimestamp)

	valueMean, ok := stream.ValueStats.Mean()
	assert.True(t, ok)
	assert.Equal(t, 3.0, valueMean)

	intervalMean, ok := stream.IntervalStats.Mean()
	assert.True(t, ok)
	assert.Equal(t, 10.0, intervalMean)
	assert.Equal(t, 2, stream.IntervalStats.Total())
}

func TestStreamStatisticsMerge(t *testing.T) {
	first := NewStreamStatistics()
	second := NewStreamStatistics()

	first.Append(0, 1.0)
	first.Append(10, 3.0)
	second.Append(20, 5.0)
	second.Append(30, 7.0)

	first.Merge(second)

	assert.Equal(t, uint64(4), first.NumValues)
	assert.Equal(t, int64(0), first.FirstArrivalTimestamp)
	assert.Equal(t, int64(30), first.LastArrivalTimestamp)

	valueMean, ok := first.ValueStats.Mean()
	assert.True(t, ok)
	assert.Equal(t, 4.0, valueMean)
	valueVar, ok := first.ValueStats.Var()
	assert.True(t, ok)
	assert.InDelta(t, 20.0/3.0, valueVar, 1e-9)
}

func TestStreamStatisticsMergeEmpty(t *testing.T) {
	stream := NewStreamStatistics()
	empty := NewStreamStatistics()

	stream.Append(5, 2.0)
	stream.Append(15, 4.0)

	stream.Merge(empty)
	assert.Equal(t, uint64(2), stream.NumValues)
	assert.Equal(t, int64(5), stream.FirstArrivalTimestamp)

	empty.Merge(stream)
	assert.Equal(t, uint64(2), empty.NumValues)
	assert.Equal(t, int64(5), empty.FirstArrivalTimestamp)
	assert.Equal(t, int64(15), empty.LastArrivalTimestamp)
	valueMean, ok := empty.ValueStats.Mean()
	assert.True(t, ok)
	assert.Equal(t, 3.0, valueMean)
}
