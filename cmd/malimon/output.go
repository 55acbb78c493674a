package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v2"

	"github.com/zephyrtronium/malimon"
)

// record is the outcome of one expression in json and yaml output.
type record struct {
	Expr    string `json:"expr" yaml:"expr"`
	Postfix string `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Result  string `json:"result,omitempty" yaml:"result,omitempty"`
	Type    string `json:"type,omitempty" yaml:"type,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

func (rec *record) set(r malimon.Number, err error) {
	if err != nil {
		rec.Error = err.Error()
		switch {
		case errors.Is(err, malimon.ErrParse):
			rec.Kind = "parse"
		case errors.Is(err, malimon.ErrCalculation):
			rec.Kind = "calculation"
		}
		return
	}
	rec.Result = r.String()
	rec.Type = "float"
	if r.IsInt() {
		rec.Type = "int"
	}
}

// writer prints results. Text output is written as results arrive; json and
// yaml output is collected and written as one document by flush.
type writer struct {
	format string
	out    io.Writer
	errs   io.Writer
	verb   string
	echo   bool
	red    *color.Color
	recs   []record
}

func newWriter(format string, out, errs io.Writer, verb string, echo bool) (*writer, error) {
	switch format {
	case "text", "json", "yaml":
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	w := writer{
		format: format,
		out:    out,
		errs:   errs,
		verb:   verb + "\n",
		echo:   echo,
		red:    newRed(),
		recs:   []record{},
	}
	return &w, nil
}

func (w *writer) write(rec record, r malimon.Number, err error) error {
	if w.format != "text" {
		w.recs = append(w.recs, rec)
		return nil
	}
	if err != nil {
		_, err = w.red.Fprintf(w.errs, "%s: %v\n", rec.Expr, err)
		return err
	}
	if w.echo {
		if _, err := fmt.Fprintf(w.out, "%s : ", rec.Postfix); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w.out, w.verb, r)
	return err
}

func (w *writer) flush() error {
	switch w.format {
	case "json":
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		return enc.Encode(w.recs)
	case "yaml":
		b, err := yaml.Marshal(w.recs)
		if err != nil {
			return err
		}
		_, err = w.out.Write(b)
		return err
	}
	return nil
}
