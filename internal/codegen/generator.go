// Package codegen translates vmcmd.Command values into Hack assembly text,
// reproducing the idioms documented in spec.md §4.3 bit for bit -- the
// downstream assembler only accepts the documented expression grammar, so
// none of this is free to "clean up".
package codegen

import (
	"fmt"
	"strings"

	"github.com/hackvm/vmtranslator/internal/config"
	"github.com/hackvm/vmtranslator/internal/vmcmd"
)

// Context tracks the current translation unit and the innermost enclosing
// function, per spec.md §3's "Translation context". Label/Goto/IfGoto
// mangle against Scope(), which falls back to the unit name outside any
// function.
type Context struct {
	unitName     string
	functionName string
}

// Scope returns the function name if one is active, otherwise the unit
// name -- the fallback scope for Label/Goto/IfGoto described in spec.md §3.
func (c Context) Scope() string {
	if c.functionName != "" {
		return c.functionName
	}
	return c.unitName
}

// Generator holds the process-wide, single-threaded translation context:
// the label counter and the current unit/function scope. It must never be
// shared across concurrent goroutines -- see internal/translator for where
// concurrency is (and is not) allowed.
type Generator struct {
	cfg          *config.Config
	labelCounter uint
	context      Context
}

// New builds a Generator against the given configuration. label_counter
// starts at 1, matching the reference implementation.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, labelCounter: 1}
}

// SetUnit sets the current translation unit's stem, used to mangle
// static-segment references. Must be called before any command from that
// unit is emitted (spec.md §3 invariant).
func (g *Generator) SetUnit(name string) {
	g.context.unitName = name
}

// Bootstrap emits the stack-pointer initialisation prologue followed by a
// call to the configured entry point (default "Sys.init"), per spec.md
// §4.3.9. It is emitted once per translation run, before any unit content.
func (g *Generator) Bootstrap() string {
	lines := []string{
		fmt.Sprintf("@%d", g.cfg.Memory.StackBase),
		"D=A",
		"@SP",
		"M=D",
	}
	return strings.Join(lines, "\n") + "\n" + g.writeCall(g.cfg.Bootstrap.EntryPoint, 0)
}

// Emit translates a single Command into its assembly fragment, preceded by
// a "// <surface>" comment line for traceability (spec.md §4.3).
func (g *Generator) Emit(cmd vmcmd.Command) string {
	comment := "// " + cmd.Surface()
	return comment + "\n" + g.write(cmd)
}

func (g *Generator) write(cmd vmcmd.Command) string {
	switch cmd.Kind {
	case vmcmd.Add:
		return join(binaryPrologue(), "M=D+M")
	case vmcmd.Sub:
		return join(binaryPrologue(), "M=M-D")
	case vmcmd.And:
		return join(binaryPrologue(), "M=D&M")
	case vmcmd.Or:
		return join(binaryPrologue(), "M=D|M")
	case vmcmd.Neg:
		return join(unaryPrologue(), "M=-D")
	case vmcmd.Not:
		return join(unaryPrologue(), "M=!D")
	case vmcmd.Eq:
		return g.writeComparison("JEQ")
	case vmcmd.Gt:
		return g.writeComparison("JGT")
	case vmcmd.Lt:
		return g.writeComparison("JLT")
	case vmcmd.Push:
		return g.writePush(cmd.Segment, cmd.Index)
	case vmcmd.Pop:
		return g.writePop(cmd.Segment, cmd.Index)
	case vmcmd.Label:
		return g.writeLabel(cmd.Name)
	case vmcmd.Goto:
		return g.writeGoto(cmd.Name)
	case vmcmd.IfGoto:
		return g.writeIfGoto(cmd.Name)
	case vmcmd.Function:
		return g.writeFunction(cmd.FuncName, cmd.N)
	case vmcmd.Call:
		return g.writeCall(cmd.FuncName, cmd.N)
	case vmcmd.Return:
		return g.writeReturn()
	default:
		return "// not implemented"
	}
}

// --- stack machine helpers (spec.md §4.3.1) ---

func pushD() []string {
	return []string{"@SP", "A=M", "M=D", "@SP", "M=M+1"}
}

func binaryPrologue() []string {
	return []string{"@SP", "AM=M-1", "D=M", "A=A-1"}
}

func unaryPrologue() []string {
	return []string{"@SP", "A=M-1", "D=M"}
}

func join(lines []string, tail ...string) string {
	return strings.Join(append(append([]string{}, lines...), tail...), "\n")
}

// --- comparisons (spec.md §4.3.3) ---

func (g *Generator) writeComparison(jump string) string {
	id := g.nextLabelID()
	trueLabel := fmt.Sprintf("TRUE.%d", id)
	outLabel := fmt.Sprintf("OUT.%d", id)

	lines := append(binaryPrologue(),
		"D=M-D",
		"@"+trueLabel,
		"D;"+jump,
		"D=0",
		"@"+outLabel,
		"0;JMP",
		"("+trueLabel+")",
		"D=-1",
		"("+outLabel+")",
		"@SP",
		"A=M-1",
		"M=D",
	)
	return strings.Join(lines, "\n")
}

// --- push / pop (spec.md §4.3.4) ---

func (g *Generator) writePush(segment vmcmd.Segment, index uint16) string {
	var lines []string
	switch segment {
	case vmcmd.Constant:
		lines = []string{fmt.Sprintf("@%d", index), "D=A"}
	case vmcmd.Static:
		lines = []string{fmt.Sprintf("@%s.%d", g.context.unitName, index), "D=M"}
	default:
		lines = append(g.baseAddress(segment),
			"D=A",
			fmt.Sprintf("@%d", index),
			"A=D+A",
			"D=M",
		)
	}
	return join(lines, pushD()...)
}

func (g *Generator) writePop(segment vmcmd.Segment, index uint16) string {
	var lines []string
	switch segment {
	case vmcmd.Static:
		lines = []string{"D=0", fmt.Sprintf("@%s.%d", g.context.unitName, index)}
	default:
		lines = append(g.baseAddress(segment), "D=A", fmt.Sprintf("@%d", index))
	}
	return join(lines, popViaR13()...)
}

// popViaR13 materialises the effective address (D+A at call time) into
// R13, then pops the stack top and stores it at *R13. The target has no
// double-indirect store, so the destination address must be staged in
// memory first (spec.md §4.3.4 rationale).
func popViaR13() []string {
	return []string{
		"D=D+A",
		"@R13",
		"M=D",
		"@SP",
		"AM=M-1",
		"D=M",
		"@R13",
		"A=M",
		"M=D",
	}
}

// baseAddress loads a non-constant, non-static segment's base address into
// A. local/argument/this/that chase their well-known pointer cell; temp
// and pointer use their literal base directly.
func (g *Generator) baseAddress(segment vmcmd.Segment) []string {
	switch segment {
	case vmcmd.Local:
		return []string{"@LCL", "A=M"}
	case vmcmd.Argument:
		return []string{"@ARG", "A=M"}
	case vmcmd.This:
		return []string{"@THIS", "A=M"}
	case vmcmd.That:
		return []string{"@THAT", "A=M"}
	case vmcmd.Temp:
		return []string{fmt.Sprintf("@%d", g.cfg.Memory.TempBase)}
	case vmcmd.Pointer:
		return []string{fmt.Sprintf("@%d", g.cfg.Memory.PointerBase)}
	default:
		return nil
	}
}

// --- branching within a function (spec.md §4.3.5) ---

func (g *Generator) writeLabel(name string) string {
	return fmt.Sprintf("(%s$%s)", g.context.Scope(), name)
}

func (g *Generator) writeGoto(name string) string {
	return fmt.Sprintf("@%s$%s\n0;JMP", g.context.Scope(), name)
}

func (g *Generator) writeIfGoto(name string) string {
	lines := []string{"@SP", "AM=M-1", "D=M", fmt.Sprintf("@%s$%s", g.context.Scope(), name), "D;JNE"}
	return strings.Join(lines, "\n")
}

// --- functions (spec.md §4.3.6-4.3.8) ---

func (g *Generator) writeFunction(name string, nlocals uint16) string {
	g.context.functionName = name
	var b strings.Builder
	fmt.Fprintf(&b, "(%s)", name)
	zeroLocal := "\nD=0\n" + strings.Join(pushD(), "\n")
	for i := uint16(0); i < nlocals; i++ {
		b.WriteString(zeroLocal)
	}
	return b.String()
}

func (g *Generator) writeCall(name string, nargs uint16) string {
	returnLabel := fmt.Sprintf("__RET_%d", g.nextLabelID())

	lines := []string{fmt.Sprintf("@%s", returnLabel), "D=A"}
	lines = append(lines, pushD()...)
	for _, seg := range []string{"LCL", "ARG", "THIS", "THAT"} {
		lines = append(lines, "@"+seg, "D=M")
		lines = append(lines, pushD()...)
	}
	lines = append(lines,
		fmt.Sprintf("@%d", nargs+5),
		"D=A",
		"@SP",
		"D=M-D",
		"@ARG",
		"M=D",
		"@SP",
		"D=M",
		"@LCL",
		"M=D",
		fmt.Sprintf("@%s", name),
		"0;JMP",
		fmt.Sprintf("(%s)", returnLabel),
	)
	return strings.Join(lines, "\n")
}

func (g *Generator) writeReturn() string {
	g.context.functionName = ""
	lines := []string{
		"@LCL", "D=M", "@R14", "M=D",
		"@5", "A=D-A", "D=M", "@R15", "M=D",
		"@SP", "AM=M-1", "D=M", "@ARG", "A=M", "M=D",
		"D=A+1", "@SP", "M=D",
	}
	lines = append(lines, restoreSegment("THAT", 1)...)
	lines = append(lines, restoreSegment("THIS", 2)...)
	lines = append(lines, restoreSegment("ARG", 3)...)
	lines = append(lines, restoreSegment("LCL", 4)...)
	lines = append(lines, "@R15", "A=M", "0;JMP")
	return strings.Join(lines, "\n")
}

func restoreSegment(segPointer string, frameOffset uint16) []string {
	return []string{
		"@R14", "D=M",
		fmt.Sprintf("@%d", frameOffset), "A=D-A",
		"D=M",
		"@" + segPointer, "M=D",
	}
}

// nextLabelID mints a fresh, monotonically increasing label id, unique
// within this translation run (spec.md §3 invariant).
func (g *Generator) nextLabelID() uint {
	id := g.labelCounter
	g.labelCounter++
	return id
}
