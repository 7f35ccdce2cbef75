package introsort

import (
	"unsafe"

	"github.com/kart81604/gosort/internal/rawsort"
)

// CompareFunc and SwapSelector are re-exported from the internal rawsort
// package so callers crossing an FFI boundary don't need to import it
// directly.
type (
	CompareFunc  = rawsort.CompareFunc
	SwapSelector = rawsort.SwapSelector
)

// Swap primitive selectors. SwapAuto picks the widest aligned transfer legal
// for the element size; the others force a specific primitive.
var (
	SwapAuto    = rawsort.SwapAuto
	SwapWords64 = rawsort.SwapWords64
	SwapWords32 = rawsort.SwapWords32
	SwapBytes   = rawsort.SwapBytes
)

// SwapCustom wraps a caller-supplied exchange primitive.
func SwapCustom(fn func(a, b unsafe.Pointer, size uintptr)) SwapSelector {
	return rawsort.SwapCustom(fn)
}

// SortRaw sorts num elements of size bytes each, starting at base, ascending
// per cmp, using the swap primitive sel selects. This is the opaque,
// byte-buffer form of the algorithm, intended for use at an FFI boundary;
// ordinary Go code should prefer Sort or SortFunc.
func SortRaw(base unsafe.Pointer, num, size uintptr, cmp CompareFunc, sel SwapSelector) error {
	return rawsort.Sort(base, num, size, cmp, sel)
}
