package sortcore

import "testing"

func TestPartitionSplitsAroundMedian(t *testing.T) {
	data := &intSlice{data: []int{5, 3, 8, 1, 9, 2, 7, 4, 6}}
	right, left := partition(data, 0, len(data.data)-1)

	if right >= left {
		t.Fatalf("expected right < left, got right=%d left=%d", right, left)
	}
	for i := 0; i <= right; i++ {
		for j := left; j < len(data.data); j++ {
			if data.data[i] > data.data[j] {
				t.Fatalf("element at %d (%d) exceeds element at %d (%d)", i, data.data[i], j, data.data[j])
			}
		}
	}
}

func TestPartitionAllEqualTerminates(t *testing.T) {
	data := &intSlice{data: make([]int, 64)}
	for i := range data.data {
		data.data[i] = 7
	}
	right, left := partition(data, 0, len(data.data)-1)
	if right < 0 || left > len(data.data) {
		t.Fatalf("partition produced out-of-range boundaries: right=%d left=%d", right, left)
	}
}

func TestPartitionTwoElements(t *testing.T) {
	data := &intSlice{data: []int{2, 1}}
	partition(data, 0, 1)
	if !isSorted(data.data) {
		t.Fatalf("expected sorted pair, got %v", data.data)
	}
}
