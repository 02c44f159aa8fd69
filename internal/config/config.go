// Package config loads flat-file schema descriptions and parser
// options from YAML files.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tuannm99/flatfile/internal/parser"
	"github.com/tuannm99/flatfile/internal/record"
)

// File formats a config file can declare.
const (
	FormatFixed     = "fixed"
	FormatDelimited = "delimited"
)

// ColumnConfig describes one column of a schema file.
type ColumnConfig struct {
	Name       string `mapstructure:"name"`
	Type       string `mapstructure:"type"`
	Width      int    `mapstructure:"width"`  // fixed format only
	Layout     string `mapstructure:"layout"` // datetime columns
	TrueToken  string `mapstructure:"true_token"`
	FalseToken string `mapstructure:"false_token"`
}

// FileConfig is the top-level shape of a flat-file description.
type FileConfig struct {
	Format string `mapstructure:"format"`

	// Fixed format options.
	FillChar        string `mapstructure:"fill_char"`
	RecordSeparator string `mapstructure:"record_separator"`

	// Delimited format options.
	Separator         string `mapstructure:"separator"`
	FirstRecordSchema bool   `mapstructure:"first_record_schema"`

	Columns []ColumnConfig `mapstructure:"columns"`
}

// Load reads a YAML flat-file description from path.
func Load(path string) (*FileConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg FileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	switch cfg.Format {
	case FormatFixed, FormatDelimited:
	case "":
		return nil, fmt.Errorf("config: format is required")
	default:
		return nil, fmt.Errorf("config: unknown format %q", cfg.Format)
	}
	return &cfg, nil
}

func (cc ColumnConfig) column() (record.Column, error) {
	kind, err := record.ParseKind(cc.Type)
	if err != nil {
		return record.Column{}, fmt.Errorf("config: column %q: %w", cc.Name, err)
	}
	col := record.Column{
		Name:       cc.Name,
		Kind:       kind,
		Layout:     cc.Layout,
		TrueToken:  cc.TrueToken,
		FalseToken: cc.FalseToken,
	}
	return col, nil
}

// BuildSchema assembles a plain schema from the column list.
func (c *FileConfig) BuildSchema() (*record.Schema, error) {
	s := &record.Schema{}
	for _, cc := range c.Columns {
		col, err := cc.column()
		if err != nil {
			return nil, err
		}
		if err := s.AddColumn(col); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// BuildFixedWidthSchema assembles a fixed-width schema; every column
// must declare a positive width.
func (c *FileConfig) BuildFixedWidthSchema() (*record.FixedWidthSchema, error) {
	s := &record.FixedWidthSchema{}
	for _, cc := range c.Columns {
		col, err := cc.column()
		if err != nil {
			return nil, err
		}
		if err := s.AddColumn(col, cc.Width); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// FixedLengthOptions maps the fixed-format knobs onto parser options.
func (c *FileConfig) FixedLengthOptions() parser.FixedLengthOptions {
	opts := parser.FixedLengthOptions{RecordSeparator: c.RecordSeparator}
	if c.FillChar != "" {
		opts.FillChar = []rune(c.FillChar)[0]
	}
	return opts
}

// DelimitedOptions maps the delimited-format knobs onto parser options.
func (c *FileConfig) DelimitedOptions() parser.DelimitedOptions {
	return parser.DelimitedOptions{
		Separator:           c.Separator,
		FirstRecordIsSchema: c.FirstRecordSchema,
	}
}
