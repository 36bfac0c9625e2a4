package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ghodss/yaml"
	"github.com/npillmayer/csopt/core"
	"github.com/npillmayer/csopt/core/font/cff/charstring"
	"github.com/pterm/pterm"
)

// Batch is the content of a batch file, e.g.
//
//	options:
//	  preserveTopology: true
//	  maxStack: 40
//	glyphs:
//	  - name: A
//	    program: "10 20 rmoveto 30 0 rlineto 0 40 rlineto"
type Batch struct {
	Options Settings `json:"options"`
	Glyphs  []Glyph  `json:"glyphs"`
}

// Glyph is a named charstring program.
type Glyph struct {
	Name    string `json:"name"`
	Program string `json:"program"`
}

// GlyphResult is the outcome of specializing a single glyph.
type GlyphResult struct {
	Name    string
	Program charstring.Program
	Report  Report
	Err     error
}

// ParseBatch decodes a YAML batch file. Options missing from the file keep
// their default values.
func ParseBatch(raw []byte) (*Batch, error) {
	b := &Batch{Options: DefaultSettings()}
	if err := yaml.Unmarshal(raw, b); err != nil {
		return nil, core.WrapError(err, core.ECONFIG, "cannot decode batch file")
	}
	if b.Options.MaxStack <= 0 {
		return nil, core.Error(core.ECONFIG, "maxStack must be positive, is %d", b.Options.MaxStack)
	}
	for i, g := range b.Glyphs {
		if g.Name == "" {
			b.Glyphs[i].Name = "#" + strconv.Itoa(i)
		}
	}
	return b, nil
}

// Run specializes every glyph of the batch. A failing glyph does not stop
// the run; its error is kept in the result.
func (b *Batch) Run() []GlyphResult {
	results := make([]GlyphResult, len(b.Glyphs))
	for i, g := range b.Glyphs {
		results[i].Name = g.Name
		commands, err := charstring.ToCommands(charstring.ParseProgram(g.Program))
		if err != nil {
			results[i].Err = err
			continue
		}
		r, s, err := measure(commands, b.Options)
		if err != nil {
			results[i].Err = err
			continue
		}
		results[i].Report = r
		results[i].Program = charstring.ToProgram(s)
		tracer().Debugf("glyph %s: %s", g.Name, results[i].Report)
	}
	return results
}

func runBatch(path string, w io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return core.WrapError(err, core.ECONFIG, "cannot read batch file %s", path)
	}
	batch, err := ParseBatch(raw)
	if err != nil {
		return err
	}
	tracer().Infof("batch %s: %d glyphs, %s", path, len(batch.Glyphs), batch.Options)
	results := batch.Run()
	return printResults(results, w)
}

func printResults(results []GlyphResult, w io.Writer) error {
	data := pterm.TableData{{"Glyph", "In", "Out", "Saved", "Program"}}
	failed, in, out := 0, 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			data = append(data, []string{r.Name, "", "", "", r.Err.Error()})
			continue
		}
		in += r.Report.Input
		out += r.Report.Specialized
		data = append(data, []string{
			r.Name,
			strconv.Itoa(r.Report.Input),
			strconv.Itoa(r.Report.Specialized),
			strconv.Itoa(r.Report.Input - r.Report.Specialized),
			r.Program.String(),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "total: %d bytes in, %d bytes out, %d saved\n", in, out, in-out)
	if failed > 0 {
		return core.Error(core.EINVALID, "%d of %d glyphs failed", failed, len(results))
	}
	return nil
}
