package sortcore

import (
	"math/rand"
	"testing"
)

func TestHeapSortPublicEntry(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	n := 500
	data := &intSlice{data: make([]int, n)}
	for i := range data.data {
		data.data[i] = r.Intn(10000)
	}
	HeapSort(data)
	if !isSorted(data.data) {
		t.Fatalf("HeapSort did not sort: %v", data.data)
	}
}

func TestHeapSortEmptyAndSingleton(t *testing.T) {
	empty := &intSlice{data: []int{}}
	HeapSort(empty) // must not panic

	single := &intSlice{data: []int{9}}
	HeapSort(single)
	if single.data[0] != 9 {
		t.Fatalf("HeapSort mutated singleton")
	}
}

func TestDepthLimit(t *testing.T) {
	cases := map[int]int{
		1:     0,
		2:     2,
		3:     2,
		4:     4,
		16:    8,
		17:    8,
		1024:  20,
		20000: 28,
	}
	for n, want := range cases {
		if got := depthLimit(n); got != want {
			t.Fatalf("depthLimit(%d) = %d, want %d", n, got, want)
		}
	}
}
