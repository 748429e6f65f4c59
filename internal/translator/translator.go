// Package translator coordinates the code generator across multiple
// translation units, per spec.md §4.4. The front end (lex/parse per unit,
// over text the caller has already read) runs concurrently, one goroutine
// per unit -- it is embarrassingly parallel, and spec.md §5
// only constrains the generator itself to be single-threaded -- while the
// generator consumes each unit's commands sequentially, in input order.
package translator

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hackvm/vmtranslator/internal/codegen"
	"github.com/hackvm/vmtranslator/internal/config"
	"github.com/hackvm/vmtranslator/internal/parser"
	"github.com/hackvm/vmtranslator/internal/vmcmd"
)

// Unit is one input translation unit: its filename (stem or with a
// trailing ".vm") and the VM source text it holds.
type Unit struct {
	Name string
	Text string
}

// stem strips a trailing ".vm" suffix, matching the unit-name convention
// the driver mangles static-segment references against.
func stem(name string) string {
	return strings.TrimSuffix(name, ".vm")
}

// Translate runs the lexer/parser/codegen pipeline over every unit, in
// order, and returns the concatenated assembly text. A parse error from
// any unit is fatal: Translate returns it immediately, matching spec.md
// §4.4 and §7 (the core returns the error; it does not exit the process).
func Translate(units []Unit, cfg *config.Config, doBootstrap bool) (string, error) {
	parsed, err := parseUnitsConcurrently(units, cfg.Memory.MaxStatic)
	if err != nil {
		return "", err
	}

	gen := codegen.New(cfg)
	var out strings.Builder

	if doBootstrap {
		out.WriteString(gen.Bootstrap())
		out.WriteString("\n")
	}

	for i, unit := range units {
		gen.SetUnit(stem(unit.Name))
		for _, cmd := range parsed[i] {
			out.WriteString(gen.Emit(cmd))
			out.WriteString("\n")
		}
	}

	return out.String(), nil
}

// parseUnitsConcurrently lexes and parses every unit's text independently,
// returning each unit's command stream in the same order as units. The
// first parse error cancels the remaining in-flight units and is returned.
func parseUnitsConcurrently(units []Unit, maxStatic uint16) ([][]vmcmd.Command, error) {
	results := make([][]vmcmd.Command, len(units))

	eg, ctx := errgroup.WithContext(context.Background())
	for i, unit := range units {
		i, unit := i, unit
		eg.Go(func() error {
			cmds, err := parseUnit(ctx, unit.Text, maxStatic)
			if err != nil {
				return err
			}
			results[i] = cmds
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseUnit(ctx context.Context, text string, maxStatic uint16) ([]vmcmd.Command, error) {
	p := parser.New(text, maxStatic)
	var cmds []vmcmd.Command
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		cmd, err, ok := p.Next()
		if !ok {
			break
		}
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
