package registers

import "fmt"

// StackPointer represents the SP register in the 6502 CPU. The stack always
// occupies page one of the address space (addresses $0100-$01FF) so the
// register itself only needs to store the low byte of the address.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for StackPointer
func NewStackPointer(val uint8) *StackPointer {
	return &StackPointer{value: val}
}

// Label returns an identifying string for the SP
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// FormatValue formats an arbitary value to look like an SP value
func (sp StackPointer) FormatValue(val interface{}) string {
	return fmt.Sprintf("%#02x", val)
}

// CurrentValue returns the current value of the SP as an integer (wrapped as a generic value)
func (sp StackPointer) CurrentValue() interface{} {
	return int(sp.value)
}

// Value returns the low byte of the stack pointer, as it would be seen by TSX/TXS
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the full 16bit address of the stack pointer, within page one
func (sp StackPointer) Address() uint16 {
	return 0x0100 | uint16(sp.value)
}

// Load a value into the SP
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Fall decrements the stack pointer, wrapping within page one. Used when
// pushing a value onto the stack.
func (sp *StackPointer) Fall() {
	sp.value--
}

// Rise increments the stack pointer, wrapping within page one. Used when
// pulling a value from the stack.
func (sp *StackPointer) Rise() {
	sp.value++
}
