// Package execution tracks the result of instruction execution on the CPU.
// The Result type stores detailed information about each instruction
// encountered during a program execution on the CPU. A Result can be used to
// produce disassembler and debugger output.
//
// The Result.IsValid() function can be used to check whether results are
// consistent with the instruction definition. The cpu package doesn't call
// this function because it would introduce unwanted performance penalties, but
// it's probably okay to use in a debugging context.
package execution
