package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// checkResult is the outcome for one input, in input order.
type checkResult struct {
	Input   string   `json:"input" yaml:"input"`
	Engine  string   `json:"engine" yaml:"engine"`
	Errors  []string `json:"errors" yaml:"errors"`
	Failure string   `json:"failure,omitempty" yaml:"failure,omitempty"`
	Cached  bool     `json:"cached,omitempty" yaml:"cached,omitempty"`
}

func (r checkResult) failed() bool {
	return r.Failure != "" || len(r.Errors) > 0
}

type palette struct {
	path    *color.Color
	ok      *color.Color
	err     *color.Color
	failure *color.Color
	summary *color.Color
}

func newPalette(mode string) *palette {
	p := &palette{
		path:    color.New(color.Bold),
		ok:      color.New(color.FgGreen),
		err:     color.New(color.FgRed),
		failure: color.New(color.FgMagenta, color.Bold),
		summary: color.New(color.FgYellow),
	}
	applyColorMode(mode, p.path, p.ok, p.err, p.failure, p.summary)
	return p
}

func renderResults(w io.Writer, format string, colorMode string, results []checkResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, newPalette(colorMode), results)
	}
}

func renderText(w io.Writer, p *palette, results []checkResult) error {
	failed := 0
	for _, r := range results {
		prefix := p.path.Sprintf("%s:", r.Input)
		switch {
		case r.Failure != "":
			failed++
			if _, err := fmt.Fprintf(w, "%s %s\n", prefix, p.failure.Sprint(r.Failure)); err != nil {
				return err
			}
		case len(r.Errors) == 0:
			if _, err := fmt.Fprintf(w, "%s %s\n", prefix, p.ok.Sprint("ok")); err != nil {
				return err
			}
		default:
			failed++
			for _, msg := range r.Errors {
				if _, err := fmt.Fprintf(w, "%s %s\n", prefix, p.err.Sprint(msg)); err != nil {
					return err
				}
			}
		}
	}

	_, err := fmt.Fprintln(w, p.summary.Sprintf("checked %d input(s), %d with errors", len(results), failed))
	return err
}
