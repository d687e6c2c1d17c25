package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"tabstat/internal/errors"

	"gopkg.in/yaml.v3"
)

// ApplyRulesFile overrides table settings with the non-empty fields of a YAML file
func (c *Config) ApplyRulesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.IOError("failed to read rules file "+path, err)
	}
	return c.ApplyRules(data)
}

// ApplyRules overrides table settings with the non-empty fields of YAML data.
// A rules document looks like:
//
//	input: viagens.xlsx
//	output: viagens_tratado.xlsx
//	sheet: Sheet1
//	drop_columns: [TICKET]
//	place_column: TRAVEL
//	currency_column: PRICE
//	place_exceptions: [de, da, do, dos, das, e]
func (c *Config) ApplyRules(data []byte) error {
	var r TableConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&r); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return errors.WithCode(errors.CodeConfigInvalid, err)
	}

	if r.InputFile != "" {
		c.Table.InputFile = r.InputFile
	}
	if r.OutputFile != "" {
		c.Table.OutputFile = r.OutputFile
	}
	if r.Sheet != "" {
		c.Table.Sheet = r.Sheet
	}
	if r.DropColumns != nil {
		c.Table.DropColumns = r.DropColumns
	}
	if r.PlaceColumn != "" {
		c.Table.PlaceColumn = r.PlaceColumn
	}
	if r.CurrencyColumn != "" {
		c.Table.CurrencyColumn = r.CurrencyColumn
	}
	if r.PlaceExceptions != nil {
		c.Table.PlaceExceptions = r.PlaceExceptions
	}
	return nil
}
