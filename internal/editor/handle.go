package editor

// Handle is a logical editor handle: either a single editable surface or a
// paired original/modified comparison surface.
//
// The type is a sealed sum: only SingleHandle and CompareHandle implement
// it, and Dispatch matches exhaustively over the two shapes. This is the
// single polymorphism point that lets resolution treat both editor shapes
// uniformly.
type Handle interface {
	isHandle()
}

// SingleHandle wraps one editable surface.
type SingleHandle struct {
	Surface Surface
}

func (SingleHandle) isHandle() {}

// CompareHandle pairs an original and a modified surface.
type CompareHandle struct {
	Original Surface
	Modified Surface
}

func (CompareHandle) isHandle() {}

// Dispatch invokes onSingle or onCompare depending on the handle's shape
// and returns the callback's result. The comparison callback is
// responsible for any further branching between the original and modified
// surfaces.
func Dispatch[T any](h Handle, onSingle func(SingleHandle) T, onCompare func(CompareHandle) T) T {
	switch v := h.(type) {
	case SingleHandle:
		return onSingle(v)
	case CompareHandle:
		return onCompare(v)
	default:
		panic("editor: unknown handle shape")
	}
}
