package proxyiter

import (
	"slices"
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/anacrolix/log"
	"github.com/go-quicktest/qt"
)

func intArray(ints ...int) *Array {
	return NewArray(
		func(i int) any { return ints[i] },
		func() int { return len(ints) },
	)
}

func TestIteratorOrder(t *testing.T) {
	it := NewIterator[int](intArray(5, 6, 7), As[int])
	qt.Check(t, qt.Equals(it.Next(), g.Some(5)))
	qt.Check(t, qt.Equals(it.Next(), g.Some(6)))
	qt.Check(t, qt.Equals(it.Next(), g.Some(7)))
	qt.Check(t, qt.IsFalse(it.Done()))
	qt.Check(t, qt.Equals(it.Next(), g.None[int]()))
	qt.Check(t, qt.IsTrue(it.Done()))
	qt.Check(t, qt.IsFalse(it.Mismatch().Ok))
}

func TestIteratorEmpty(t *testing.T) {
	it := NewIterator[int](intArray(), As[int])
	qt.Assert(t, qt.IsFalse(it.Next().Ok))
	qt.Assert(t, qt.IsTrue(it.Done()))
}

func TestIteratorStopsAtEndWithoutPullingAgain(t *testing.T) {
	pulls := 0
	e := EnumerableFunc(func() (any, bool) {
		pulls++
		return nil, false
	})
	it := NewIterator[int](e, As[int])
	qt.Assert(t, qt.IsFalse(it.Next().Ok))
	qt.Assert(t, qt.IsFalse(it.Next().Ok))
	qt.Assert(t, qt.Equals(pulls, 1))
}

func TestConversionFailureEndsIteration(t *testing.T) {
	objs := []any{1, 2, "three", 4}
	arr := NewArray(func(i int) any { return objs[i] }, func() int { return len(objs) })
	it := NewIterator[int](arr, As[int])
	qt.Check(t, qt.Equals(it.Next(), g.Some(1)))
	qt.Check(t, qt.Equals(it.Next(), g.Some(2)))
	qt.Check(t, qt.IsFalse(it.Next().Ok))
	qt.Check(t, qt.Equals(it.Mismatch(), g.Some[any]("three")))
	// Terminal even though the foreign side has more.
	qt.Check(t, qt.IsFalse(it.Next().Ok))
	qt.Check(t, qt.DeepEquals(Of[int](arr).Collect(), []int{1, 2}))
}

func TestMapConverter(t *testing.T) {
	seq := NewSequence(intArray(1, 2), Map(func(i int) string {
		return string(rune('a' + i))
	}))
	qt.Assert(t, qt.DeepEquals(seq.Collect(), []string{"b", "c"}))
}

func panics(f func()) (panicked bool) {
	defer func() {
		panicked = recover() != nil
	}()
	f()
	return
}

func TestNewIteratorRejectsNil(t *testing.T) {
	qt.Check(t, qt.IsTrue(panics(func() { NewIterator[int](nil, As[int]) })))
	qt.Check(t, qt.IsTrue(panics(func() { NewIterator[int](intArray(), nil) })))
	qt.Check(t, qt.IsFalse(panics(func() { NewIterator[int](intArray(), As[int]) })))
}

type recordingHandler struct {
	records []log.Record
}

func (me *recordingHandler) Handle(r log.Record) {
	me.records = append(me.records, r)
}

func TestConversionFailureLogged(t *testing.T) {
	objs := []any{1, "two"}
	arr := NewArray(func(i int) any { return objs[i] }, func() int { return len(objs) })
	var h recordingHandler
	l := log.Default.WithFilterLevel(log.Debug)
	l.SetHandlers(&h)
	it := NewIterator[int](arr, As[int])
	it.Logger = l
	qt.Assert(t, qt.IsTrue(it.Next().Ok))
	qt.Assert(t, qt.HasLen(h.records, 0))
	qt.Assert(t, qt.IsFalse(it.Next().Ok))
	qt.Assert(t, qt.HasLen(h.records, 1))
	qt.Check(t, qt.Equals(h.records[0].Level, log.Debug))
	qt.Check(t, qt.Equals(h.records[0].Msg.String(), "ending iteration at element of type string: not a int"))
	// Plain exhaustion isn't logged.
	empty := NewIterator[int](intArray(), As[int])
	empty.Logger = l
	qt.Check(t, qt.IsFalse(empty.Next().Ok))
	qt.Check(t, qt.HasLen(h.records, 1))
}

func TestSequenceAll(t *testing.T) {
	seq := Of[int](intArray(3, 1, 2))
	qt.Assert(t, qt.DeepEquals(slices.Collect(seq.All()), []int{3, 1, 2}))
	var early []int
	for i := range seq.All() {
		early = append(early, i)
		if len(early) == 2 {
			break
		}
	}
	qt.Assert(t, qt.DeepEquals(early, []int{3, 1}))
}

func TestSequenceEnumerate(t *testing.T) {
	var positions, values []int
	for i, v := range Of[int](intArray(10, 20)).Enumerate() {
		positions = append(positions, i)
		values = append(values, v)
	}
	qt.Check(t, qt.DeepEquals(positions, []int{0, 1}))
	qt.Check(t, qt.DeepEquals(values, []int{10, 20}))
}

func TestSequenceLast(t *testing.T) {
	qt.Check(t, qt.Equals(Of[int](intArray(1, 2, 3)).Last(), g.Some(3)))
	qt.Check(t, qt.IsFalse(Of[int](intArray()).Last().Ok))
}

func TestReenumerationOfResetter(t *testing.T) {
	seq := Of[int](intArray(1, 2))
	qt.Assert(t, qt.DeepEquals(seq.Collect(), []int{1, 2}))
	qt.Assert(t, qt.DeepEquals(seq.Collect(), []int{1, 2}))
}
