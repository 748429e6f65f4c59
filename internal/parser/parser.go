// Package parser turns cleaned VM source lines into vmcmd.Command values,
// rejecting malformed or out-of-range operands per spec.md §4.2.
package parser

import (
	"strconv"
	"strings"

	"github.com/hackvm/vmtranslator/internal/lexer"
	"github.com/hackvm/vmtranslator/internal/vmcmd"
	"github.com/hackvm/vmtranslator/internal/vmerr"
)

const maxIndex = 32767

// DefaultMaxStatic is the static-segment bound used when a caller has no
// internal/config.Config to draw one from (matching config.Default()'s
// own value, spec.md §3's 240-variable allowance).
const DefaultMaxStatic = 239

// Parser pulls cleaned lines from a lexer.Cleaner and parses each into a
// vmcmd.Command.
type Parser struct {
	cleaner   *lexer.Cleaner
	maxStatic uint16
}

// New builds a Parser over VM source text, enforcing maxStatic as the
// largest legal `static` index (internal/config.Config.Memory.MaxStatic).
func New(text string, maxStatic uint16) *Parser {
	return &Parser{cleaner: lexer.New(text), maxStatic: maxStatic}
}

// Next returns the next parsed command, or an error bound to the offending
// line, or ok=false at end of input. A parse error does not advance past
// end of input -- the caller should treat any non-nil err as fatal per
// spec.md §4.4.
func (p *Parser) Next() (cmd vmcmd.Command, err error, ok bool) {
	line, present := p.cleaner.Next()
	if !present {
		return vmcmd.Command{}, nil, false
	}
	cmd, err = Parse(line, p.maxStatic)
	return cmd, err, true
}

// Parse parses a single cleaned line into a Command, enforcing maxStatic
// as the largest legal `static` index. It is exported separately from the
// streaming Next() because callers (and tests) often want to parse one
// line without constructing a Cleaner.
func Parse(line string, maxStatic uint16) (vmcmd.Command, error) {
	tokens := strings.Fields(line)

	switch len(tokens) {
	case 0:
		return vmcmd.Command{}, vmerr.NewParseError(line, "empty line")
	case 1, 2, 3:
		return parseTokens(line, tokens, maxStatic)
	default:
		return vmcmd.Command{}, vmerr.NewParseError(line, "too many tokens")
	}
}

func parseTokens(line string, tokens []string, maxStatic uint16) (vmcmd.Command, error) {
	switch tokens[0] {
	case "add":
		return oneWord(line, tokens, vmcmd.Add)
	case "sub":
		return oneWord(line, tokens, vmcmd.Sub)
	case "neg":
		return oneWord(line, tokens, vmcmd.Neg)
	case "eq":
		return oneWord(line, tokens, vmcmd.Eq)
	case "gt":
		return oneWord(line, tokens, vmcmd.Gt)
	case "lt":
		return oneWord(line, tokens, vmcmd.Lt)
	case "and":
		return oneWord(line, tokens, vmcmd.And)
	case "or":
		return oneWord(line, tokens, vmcmd.Or)
	case "not":
		return oneWord(line, tokens, vmcmd.Not)
	case "return":
		return oneWord(line, tokens, vmcmd.Return)
	case "push":
		return parsePush(line, tokens, maxStatic)
	case "pop":
		return parsePop(line, tokens, maxStatic)
	case "label":
		return parseLabelLike(line, tokens, vmcmd.Label)
	case "goto":
		return parseLabelLike(line, tokens, vmcmd.Goto)
	case "if-goto":
		return parseLabelLike(line, tokens, vmcmd.IfGoto)
	case "function":
		return parseFuncLike(line, tokens, vmcmd.Function)
	case "call":
		return parseFuncLike(line, tokens, vmcmd.Call)
	default:
		return vmcmd.Command{}, vmerr.NewParseError(line, "unknown keyword "+tokens[0])
	}
}

func oneWord(line string, tokens []string, kind vmcmd.Kind) (vmcmd.Command, error) {
	if len(tokens) != 1 {
		return vmcmd.Command{}, vmerr.NewParseError(line, "wrong arity for "+tokens[0])
	}
	return vmcmd.Command{Kind: kind}, nil
}

func parsePush(line string, tokens []string, maxStatic uint16) (vmcmd.Command, error) {
	if len(tokens) != 3 {
		return vmcmd.Command{}, vmerr.NewParseError(line, "push requires a segment and an index")
	}
	segment, ok := vmcmd.LookupSegment(tokens[1])
	if !ok {
		return vmcmd.Command{}, vmerr.NewParseError(line, "unknown segment "+tokens[1])
	}
	index, err := parseIndex(line, tokens[2], pushMax(segment, maxStatic))
	if err != nil {
		return vmcmd.Command{}, err
	}
	return vmcmd.Command{Kind: vmcmd.Push, Segment: segment, Index: index}, nil
}

func parsePop(line string, tokens []string, maxStatic uint16) (vmcmd.Command, error) {
	if len(tokens) != 3 {
		return vmcmd.Command{}, vmerr.NewParseError(line, "pop requires a segment and an index")
	}
	segment, ok := vmcmd.LookupSegment(tokens[1])
	if !ok {
		return vmcmd.Command{}, vmerr.NewParseError(line, "unknown segment "+tokens[1])
	}
	if segment == vmcmd.Constant {
		return vmcmd.Command{}, vmerr.NewInvalidOperation(line, "pop constant is not a valid operation")
	}
	index, err := parseIndex(line, tokens[2], popMax(segment, maxStatic))
	if err != nil {
		return vmcmd.Command{}, err
	}
	return vmcmd.Command{Kind: vmcmd.Pop, Segment: segment, Index: index}, nil
}

// pushMax is simply the segment's declared bound.
func pushMax(segment vmcmd.Segment, maxStatic uint16) uint16 {
	return segment.MaxIndex(maxStatic)
}

// popMax matches pushMax for every segment: the spec's corrected reading
// of §9's open question is that `pop temp i` is bounded at i <= 7, same as
// push, because the segment only has 8 slots. The looser i <= 8 bound seen
// in one reference revision is not honored here.
func popMax(segment vmcmd.Segment, maxStatic uint16) uint16 {
	return segment.MaxIndex(maxStatic)
}

func parseIndex(line, token string, max uint16) (uint16, error) {
	value, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0, vmerr.NewParseError(line, "invalid numeric operand "+token)
	}
	if value > uint64(max) {
		return 0, vmerr.NewParseError(line, "index out of range: "+token)
	}
	return uint16(value), nil
}

func parseLabelLike(line string, tokens []string, kind vmcmd.Kind) (vmcmd.Command, error) {
	if len(tokens) != 2 {
		return vmcmd.Command{}, vmerr.NewParseError(line, "expected exactly one label name")
	}
	if tokens[1] == "" {
		return vmcmd.Command{}, vmerr.NewParseError(line, "label name must not be empty")
	}
	return vmcmd.Command{Kind: kind, Name: tokens[1]}, nil
}

func parseFuncLike(line string, tokens []string, kind vmcmd.Kind) (vmcmd.Command, error) {
	if len(tokens) != 3 {
		return vmcmd.Command{}, vmerr.NewParseError(line, "expected a name and a numeric operand")
	}
	n, err := parseIndex(line, tokens[2], maxIndex)
	if err != nil {
		return vmcmd.Command{}, err
	}
	return vmcmd.Command{Kind: kind, FuncName: tokens[1], N: n}, nil
}
