package rawsort

import (
	"errors"
	"unsafe"
)

// swapFunc exchanges the size bytes at a and b. The two regions must not
// overlap.
type swapFunc func(a, b unsafe.Pointer, size uintptr)

// SwapSelector chooses which in-place exchange primitive Sort uses. The
// zero value, SwapAuto, picks the widest aligned transfer legal for the
// element size — 8-byte words when size is a multiple of 8, 4-byte words
// when it's a multiple of 4, and a byte-wise fallback otherwise.
type SwapSelector struct {
	kind swapKind
	fn   swapFunc
}

type swapKind int

const (
	swapAuto swapKind = iota
	swapWords64
	swapWords32
	swapBytes
	swapCustom
)

// SwapAuto selects the best aligned primitive for the element size at call
// time, re-deriving the choice sort_impl.h's caller would otherwise have to
// make by hand.
var SwapAuto = SwapSelector{kind: swapAuto}

// SwapWords64 forces 8-byte-chunk exchange. size must be a multiple of 8.
var SwapWords64 = SwapSelector{kind: swapWords64}

// SwapWords32 forces 4-byte-chunk exchange. size must be a multiple of 4.
var SwapWords32 = SwapSelector{kind: swapWords32}

// SwapBytes forces byte-wise exchange. Always legal regardless of size.
var SwapBytes = SwapSelector{kind: swapBytes}

// SwapCustom wraps a caller-supplied exchange primitive, the escape hatch
// for element layouts none of the built-in primitives can move safely (e.g.
// containing pointers that need a write barrier).
func SwapCustom(fn func(a, b unsafe.Pointer, size uintptr)) SwapSelector {
	return SwapSelector{kind: swapCustom, fn: swapFunc(fn)}
}

var errMisalignedSize = errors.New("element size is not compatible with the requested swap primitive")

func (s SwapSelector) resolve(size uintptr) (swapFunc, error) {
	switch s.kind {
	case swapCustom:
		return s.fn, nil
	case swapWords64:
		if size%8 != 0 {
			return nil, errMisalignedSize
		}
		return swapWords64Fn, nil
	case swapWords32:
		if size%4 != 0 {
			return nil, errMisalignedSize
		}
		return swapWords32Fn, nil
	case swapBytes:
		return swapBytesFn, nil
	default: // swapAuto
		switch {
		case size%8 == 0:
			return swapWords64Fn, nil
		case size%4 == 0:
			return swapWords32Fn, nil
		default:
			return swapBytesFn, nil
		}
	}
}

// swapWords64Fn exchanges size bytes in 8-byte strides. size must be a
// non-zero multiple of 8.
func swapWords64Fn(a, b unsafe.Pointer, size uintptr) {
	for n := size; n > 0; {
		n -= 8
		pa := (*uint64)(unsafe.Add(a, n))
		pb := (*uint64)(unsafe.Add(b, n))
		*pa, *pb = *pb, *pa
	}
}

// swapWords32Fn exchanges size bytes in 4-byte strides. size must be a
// non-zero multiple of 4.
func swapWords32Fn(a, b unsafe.Pointer, size uintptr) {
	for n := size; n > 0; {
		n -= 4
		pa := (*uint32)(unsafe.Add(a, n))
		pb := (*uint32)(unsafe.Add(b, n))
		*pa, *pb = *pb, *pa
	}
}

// swapBytesFn exchanges size bytes one at a time. Always legal.
func swapBytesFn(a, b unsafe.Pointer, size uintptr) {
	ba := unsafe.Slice((*byte)(a), size)
	bb := unsafe.Slice((*byte)(b), size)
	for i := range ba {
		ba[i], bb[i] = bb[i], ba[i]
	}
}
