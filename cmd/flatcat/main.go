// Command flatcat prints a flat text file as a typed table, using a
// YAML schema description.
//
// Usage:
//
//	flatcat -config orders.yaml orders.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/tuannm99/flatfile"
	"github.com/tuannm99/flatfile/internal/config"
)

func main() {
	configPath := flag.String("config", "", "YAML flat-file description")
	flag.Parse()

	if *configPath == "" || flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s -config <schema.yaml> <file>\n", os.Args[0])
		os.Exit(2)
	}
	dataPath := flag.Arg(0)

	cfg, err := flatfile.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	p, err := openParser(cfg, dataPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", dataPath, err)
	}
	defer p.Close()

	if err := printAll(p); err != nil {
		log.Fatalf("Failed to read %s: %v", dataPath, err)
	}
}

func openParser(cfg *flatfile.FileConfig, path string) (flatfile.RecordParser, error) {
	switch cfg.Format {
	case config.FormatFixed:
		schema, err := cfg.BuildFixedWidthSchema()
		if err != nil {
			return nil, err
		}
		return flatfile.OpenFixedLengthFile(path, schema, cfg.FixedLengthOptions())
	case config.FormatDelimited:
		var schema *flatfile.Schema
		if len(cfg.Columns) > 0 {
			s, err := cfg.BuildSchema()
			if err != nil {
				return nil, err
			}
			schema = s
		}
		return flatfile.OpenDelimitedFile(path, schema, cfg.DelimitedOptions())
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}
}

func printAll(p flatfile.RecordParser) error {
	t, err := flatfile.LoadTable(p)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	defer w.Flush()

	for i, c := range t.Columns() {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, c.Name)
	}
	fmt.Fprintln(w)

	for i := 0; i < t.NumRows(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				fmt.Fprint(w, "\t")
			}
			if v == nil {
				fmt.Fprint(w, "<null>")
				continue
			}
			fmt.Fprintf(w, "%v", v)
		}
		fmt.Fprintln(w)
	}
	return nil
}
