package jarray

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFindFirstAndLast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3, 4, 5})
	even := func(n int) bool { return n%2 == 0 }
	first, err := arr.FindFirst(even)
	if err != nil || first != 2 {
		t.Errorf("expected first even to be 2, have %d (%v)", first, err)
	}
	last, err := arr.FindLast(even)
	if err != nil || last != 4 {
		t.Errorf("expected last even to be 4, have %d (%v)", last, err)
	}
	if _, err = arr.FindFirst(func(n int) bool { return n > 99 }); err == nil || err.Kind != ElementNotFound {
		t.Errorf("expected ElementNotFound, have %v", err)
	}
}

func TestFindIndexSentinel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3})
	i, err := arr.FindFirstIndex(func(n int) bool { return n == 3 })
	if err != nil || i != 2 {
		t.Errorf("expected index 2, have %d (%v)", i, err)
	}
	i, err = arr.FindLastIndex(func(n int) bool { return n < 3 })
	if err != nil || i != 1 {
		t.Errorf("expected index 1, have %d (%v)", i, err)
	}
	// the not-found sentinel is the length; the error is authoritative
	i, err = arr.FindFirstIndex(func(n int) bool { return n == 9 })
	if err == nil || err.Kind != ElementNotFound {
		t.Fatalf("expected ElementNotFound, have %v", err)
	}
	if i != arr.Len() {
		t.Errorf("expected sentinel index %d, have %d", arr.Len(), i)
	}
}

func TestIndexesOf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 2, 3, 2}, WithCapabilities(intCaps()))
	indexes, err := arr.IndexesOf(2)
	if err != nil {
		t.Fatalf("indexes of failed: %v", err)
	}
	want := []int{1, 2, 4}
	if len(indexes) != len(want) {
		t.Fatalf("expected %d matches, have %d", len(want), len(indexes))
	}
	for i, w := range want {
		if indexes[i] != w {
			t.Errorf("expected match %d at index %d, is %d", i, w, indexes[i])
		}
	}
	if _, err = arr.IndexesOf(7); err == nil || err.Kind != ElementNotFound {
		t.Errorf("expected ElementNotFound, have %v", err)
	}
}

func TestIndexesOfNeedsEqual(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3})
	if _, err := arr.IndexesOf(2); err == nil || err.Kind != EqualityCallbackMissing {
		t.Errorf("expected EqualityCallbackMissing, have %v", err)
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3}, WithCapabilities(intCaps()))
	ok, err := arr.Contains(2)
	if err != nil || !ok {
		t.Errorf("expected containment of 2, have %v (%v)", ok, err)
	}
	ok, err = arr.Contains(9)
	if err != nil || ok {
		t.Errorf("expected no containment of 9, have %v (%v)", ok, err)
	}
}

func TestAnyShortCircuits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3})
	calls := 0
	ok, err := arr.Any(func(n int) bool {
		calls++
		return n == 1
	})
	if err != nil || !ok {
		t.Fatalf("expected any to hold, have %v (%v)", ok, err)
	}
	if calls != 1 {
		t.Errorf("expected short-circuit after 1 call, made %d", calls)
	}
}

func TestForEachMutatesInPlace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := FromSlice([]int{1, 2, 3})
	if err := arr.ForEach(func(elem *int) { *elem *= 10 }); err != nil {
		t.Fatalf("for each failed: %v", err)
	}
	assertElements(t, arr, []int{10, 20, 30})
}

func TestSearchOnEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jarray")
	defer teardown()
	//
	arr := New[int](WithCapabilities(intCaps()))
	pred := func(int) bool { return true }
	if _, err := arr.FindFirst(pred); err == nil || err.Kind != Empty {
		t.Errorf("FindFirst: expected Empty, have %v", err)
	}
	if _, err := arr.Contains(1); err == nil || err.Kind != Empty {
		t.Errorf("Contains: expected Empty, have %v", err)
	}
	if _, err := arr.Any(pred); err == nil || err.Kind != Empty {
		t.Errorf("Any: expected Empty, have %v", err)
	}
	if err := arr.ForEach(func(*int) {}); err == nil || err.Kind != Empty {
		t.Errorf("ForEach: expected Empty, have %v", err)
	}
}
