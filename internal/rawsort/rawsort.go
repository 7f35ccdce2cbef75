// Package rawsort exposes the introsort algorithm over an opaque byte
// buffer, the way the system this package was modeled on does: a base
// pointer, an element count, a per-element size, a comparator over two
// element pointers, and a choice of in-place swap primitive. It exists only
// as an FFI boundary — ordinary Go callers should use the generic Sort/
// SortFunc entry points in the parent package instead.
package rawsort

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/kart81604/gosort/internal/sortcore"
)

// ErrZeroElementSize is returned when size is zero. The original system this
// is modeled on leaves size==0 as undefined behavior; detecting it costs
// nothing in Go and turns a silent misbehavior into a reported error.
var ErrZeroElementSize = errors.New("rawsort: element size must be positive")

// ErrNilComparator is returned when cmp is nil.
var ErrNilComparator = errors.New("rawsort: comparator must not be nil")

// CompareFunc reports the ordering of the two elements a and b: negative if
// a sorts before b, zero if they are equivalent, positive if a sorts after
// b. It must be a pure function of the bytes a and b point to.
type CompareFunc func(a, b unsafe.Pointer) int

// Sort orders num elements of size bytes each, starting at base, ascending
// per cmp, using the swap primitive selected by sel. If num == 0 it returns
// immediately. base must point to at least num*size writable, non-overlapping
// bytes.
func Sort(base unsafe.Pointer, num, size uintptr, cmp CompareFunc, sel SwapSelector) error {
	if num == 0 {
		return nil
	}
	if size == 0 {
		return ErrZeroElementSize
	}
	if cmp == nil {
		return ErrNilComparator
	}

	swap, err := sel.resolve(size)
	if err != nil {
		return fmt.Errorf("rawsort: %w", err)
	}

	a := &bufferAdapter{
		base:    base,
		size:    size,
		cmp:     cmp,
		swap:    swap,
		scratch: make([]byte, size),
		n:       int(num),
	}
	sortcore.Sort(a)
	return nil
}

// bufferAdapter implements sortcore.Interface over a raw byte buffer,
// translating index operations into pointer arithmetic and delegating
// element exchange to the chosen swap primitive.
type bufferAdapter struct {
	base    unsafe.Pointer
	size    uintptr
	cmp     CompareFunc
	swap    swapFunc
	scratch []byte
	n       int
}

func (b *bufferAdapter) at(i int) unsafe.Pointer {
	return unsafe.Add(b.base, uintptr(i)*b.size)
}

func (b *bufferAdapter) bytesAt(i int) []byte {
	return unsafe.Slice((*byte)(b.at(i)), b.size)
}

func (b *bufferAdapter) Len() int           { return b.n }
func (b *bufferAdapter) Less(i, j int) bool { return b.cmp(b.at(i), b.at(j)) < 0 }
func (b *bufferAdapter) Swap(i, j int)      { b.swap(b.at(i), b.at(j), b.size) }
func (b *bufferAdapter) Move(dst, src int)  { copy(b.bytesAt(dst), b.bytesAt(src)) }
func (b *bufferAdapter) Save(i int)         { copy(b.scratch, b.bytesAt(i)) }
func (b *bufferAdapter) Restore(i int)      { copy(b.bytesAt(i), b.scratch) }

func (b *bufferAdapter) scratchPtr() unsafe.Pointer {
	return unsafe.Pointer(&b.scratch[0])
}

func (b *bufferAdapter) LessScratch(i int) bool { return b.cmp(b.at(i), b.scratchPtr()) < 0 }
func (b *bufferAdapter) ScratchLess(i int) bool { return b.cmp(b.scratchPtr(), b.at(i)) < 0 }
