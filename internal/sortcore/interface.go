// Package sortcore implements the introsort algorithm over an index-based
// element interface instead of the raw byte-pointer addressing of the system
// this package was modeled on. The algorithm itself — median-of-three
// partitioning, a depth-triggered heapsort fallback with Floyd's
// optimization, and a two-gap shellsort cleanup — is unchanged; only the
// element-access layer is generalized so the same code can back both a
// generics-based public API and an opaque-buffer FFI boundary.
package sortcore

// Interface abstracts element access by index, the way sort.Interface does,
// plus a single scratch register used by the heapsort fallback to hold the
// value being sifted. Len/Less/Swap have the usual sort.Interface meaning.
// Move, Save, Restore, LessScratch and ScratchLess exist only to let the
// heapsort phase implement Floyd's optimization without requiring a
// caller-visible temporary: the algorithm never needs more than one scratch
// value live at a time.
type Interface interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)

	// Move copies the element at src into dst. The element previously at dst
	// is overwritten and considered gone; the element at src is left
	// unspecified (the caller is expected to either overwrite or Restore it
	// before relying on its value again).
	Move(dst, src int)

	// Save copies the element at i into the scratch register.
	Save(i int)
	// Restore copies the scratch register into the element at i.
	Restore(i int)
	// LessScratch reports whether the element at i is less than the current
	// scratch register value.
	LessScratch(i int) bool
	// ScratchLess reports whether the current scratch register value is less
	// than the element at i.
	ScratchLess(i int) bool
}
