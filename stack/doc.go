// Package stack provides inline wrappers that place a value at a fixed
// alignment without a heap allocation.
//
// Align2, Align4 and Align8 raise the alignment of the wrapper itself, so
// the value is aligned wherever the wrapper lives: in a variable, a struct
// field at any offset, or an array element. Any T is allowed and V is
// accessed directly.
//
// Go cannot declare a type whose alignment exceeds the machine word.
// Align16, Align32 and Align64 therefore reserve slack ahead of the value
// and keep it at the aligned position of the wrapper's current address.
// Copying a wrapper copies the value with it; Get and Set move it into
// place, so they need exclusive access. Into reads the value where it lies
// and may run concurrently. T must not contain Go pointers for these three
// types.
//
// Example:
//
//	type frame struct {
//		tag  byte
//		regs stack.Align32[[8]float32]
//	}
//
//	var f frame
//	f.regs.Set([8]float32{1, 2, 3})
//	p := f.regs.Get() // *[8]float32, address % 32 == 0
//
// On platforms where uint64 is only 4-byte aligned, Align8 inherits that
// weaker guarantee; Alignment reports the real value.
package stack
