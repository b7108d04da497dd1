package presets

import (
	"testing"

	"github.com/npillmayer/jarray"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntPreset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray.presets")
	defer teardown()
	//
	arr := Int()
	require.Nil(t, arr.AddMany(5, 3, 1, 4, 2))
	require.Nil(t, arr.Sort(jarray.QuickSort, nil))
	s, err := arr.Join(",")
	require.Nil(t, err)
	assert.Equal(t, "1,2,3,4,5", s)
	ok, err := arr.Contains(4)
	require.Nil(t, err)
	assert.True(t, ok)
}

func TestFloat64Preset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray.presets")
	defer teardown()
	//
	arr := Float64(jarray.WithCapacity[float64](4))
	require.Nil(t, arr.AddMany(2.5, 0.5, 1.5))
	require.Nil(t, arr.Sort(jarray.InsertionSort, nil))
	data, err := arr.CopyData()
	require.Nil(t, err)
	assert.Equal(t, []float64{0.5, 1.5, 2.5}, data)
	assert.Equal(t, 4, arr.Reservation())
}

func TestStringPreset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray.presets")
	defer teardown()
	//
	arr := String()
	require.Nil(t, arr.AddMany("pear", "apple", "quince"))
	require.Nil(t, arr.Sort(jarray.BubbleSort, nil))
	s, err := arr.Join(" ")
	require.Nil(t, err)
	assert.Equal(t, "apple pear quince", s)
}

func TestByteSlicesAreOwned(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray.presets")
	defer teardown()
	//
	arr := ByteSlices()
	assert.Equal(t, jarray.KindOwnedPointer, arr.ElementKind())
	src := []byte("mutable")
	require.Nil(t, arr.Add(src))
	src[0] = 'X' // the container must hold its own copy
	got, err := arr.At(0)
	require.Nil(t, err)
	assert.Equal(t, "mutable", string(got))

	clone, err := arr.Clone()
	require.Nil(t, err)
	c0, err := clone.At(0)
	require.Nil(t, err)
	a0, _ := arr.At(0)
	assert.Equal(t, a0, c0)
	if len(a0) > 0 && len(c0) > 0 && &a0[0] == &c0[0] {
		t.Error("expected clone to hold a distinct allocation")
	}
}

func TestRunePreset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray.presets")
	defer teardown()
	//
	arr := Rune()
	require.Nil(t, arr.AddMany('c', 'a', 'b'))
	require.Nil(t, arr.Sort(jarray.SelectionSort, nil))
	data, err := arr.CopyData()
	require.Nil(t, err)
	assert.Equal(t, []rune{'a', 'b', 'c'}, data)
}
