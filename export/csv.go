// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package export formats registrations for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/danielhkuo/quickly-draw/models"
	"github.com/danielhkuo/quickly-draw/registry"
)

// Header is the column row of the registrations CSV
var Header = []string{"data_hora", "nome_usuario", "numeros"}

// WriteRegistrationsCSV writes one row per registration after the header.
func WriteRegistrationsCSV(w io.Writer, registrations []models.Registration) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, reg := range registrations {
		row := []string{reg.Timestamp, reg.Name, registry.JoinNumbers(reg.Numbers)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
