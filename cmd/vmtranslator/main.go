// Command vmtranslator is the CLI front end for the Hack VM-to-assembly
// translator. Argument parsing, filesystem traversal, and writing the
// output file are external-collaborator concerns (spec.md §1, §6); this
// file is a thin wiring layer over internal/translator.
package main

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/teris-io/cli"

	"github.com/hackvm/vmtranslator/internal/config"
	"github.com/hackvm/vmtranslator/internal/diagnostics"
	"github.com/hackvm/vmtranslator/internal/translator"
	"github.com/hackvm/vmtranslator/internal/vmerr"
)

var description = strings.ReplaceAll(`
Translates programs written in the VM language into Hack assembly. Accepts
a single .vm file, a directory of .vm files, or (with no argument) a
program piped in on stdin.
`, "\n", " ")

var app = cli.New(description).
	WithArg(cli.NewArg("input", "a .vm file, a directory of .vm files, or omitted to read stdin").
		AsOptional().WithType(cli.TypeString)).
	WithOption(cli.NewOption("output", "output .asm path; defaults next to the input").
		WithType(cli.TypeString)).
	WithOption(cli.NewOption("bootstrap", "prepend the stack-pointer/Sys.init bootstrap").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("verbose", "enable debug-level diagnostics").
		WithType(cli.TypeBool)).
	WithOption(cli.NewOption("config", "path to an optional TOML config file").
		WithType(cli.TypeString)).
	WithAction(run)

func main() {
	os.Exit(app.Run(os.Args, os.Stdout))
}

func run(args []string, options map[string]string) int {
	if _, verbose := options["verbose"]; verbose {
		diagnostics.Default.Verbose = true
	}

	cfg, err := config.LoadFrom(options["config"])
	if err != nil {
		diagnostics.Default.Errorf("%+v", err)
		return 1
	}
	if cfg.Diagnostics.Verbose {
		diagnostics.Default.Verbose = true
	}
	if _, bootstrap := options["bootstrap"]; bootstrap {
		cfg.Bootstrap.Enabled = true
	}

	var inputArg string
	if len(args) > 0 {
		inputArg = args[0]
	}

	units, defaultOutput, err := resolveInput(inputArg)
	if err != nil {
		diagnostics.Default.Errorf("%+v", err)
		return 1
	}

	outputPath := defaultOutput
	if options["output"] != "" {
		outputPath = options["output"]
	}

	diagnostics.Default.Debugf("translating %d unit(s) into %s", len(units), outputPath)

	asm, err := translator.Translate(units, cfg, cfg.Bootstrap.Enabled)
	if err != nil {
		diagnostics.Default.Errorf("%+v", err)
		return 1
	}

	if err := writeOutput(outputPath, asm); err != nil {
		diagnostics.Default.Errorf("%+v", err)
		return 1
	}

	diagnostics.Default.Infof("wrote %s", outputPath)
	return 0
}

// resolveInput implements spec.md §6's input surface: no argument reads a
// single unit from stdin (name "stdin", output stem "a"); a regular file
// is a single unit; a directory is every immediate *.vm child, sorted by
// file name, with the directory's own stem naming the output.
func resolveInput(path string) (units []translator.Unit, outputPath string, err error) {
	if path == "" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", vmerr.NewIOFailure("stdin", err)
		}
		return []translator.Unit{{Name: "stdin", Text: string(text)}}, "a.asm", nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, "", vmerr.NewIOFailure(path, err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, "", vmerr.NewIOFailure(path, err)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".vm") {
				continue
			}
			entryPath := filepath.Join(path, entry.Name())
			content, err := os.ReadFile(entryPath)
			if err != nil {
				return nil, "", vmerr.NewIOFailure(entryPath, err)
			}
			units = append(units, translator.Unit{Name: entry.Name(), Text: string(content)})
		}

		dirStem := filepath.Base(filepath.Clean(path))
		return units, filepath.Join(path, dirStem+".asm"), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", vmerr.NewIOFailure(path, err)
	}
	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, ".vm")
	outputPath = filepath.Join(filepath.Dir(path), stem+".asm")
	return []translator.Unit{{Name: name, Text: string(content)}}, outputPath, nil
}

func writeOutput(path, asm string) error {
	f, err := os.Create(path)
	if err != nil {
		return vmerr.NewIOFailure(path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(asm); err != nil {
		return vmerr.NewIOFailure(path, err)
	}
	if !strings.HasSuffix(asm, "\n") {
		if _, err := f.WriteString("\n"); err != nil {
			return vmerr.NewIOFailure(path, err)
		}
	}
	return nil
}
