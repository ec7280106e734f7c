package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jpennells/stakeholder-map-go/internal/models"
)

// Recognized input columns. Unknown columns are ignored; missing columns
// read as empty.
const (
	colName        = "Name"
	colPosition    = "Position"
	colAffiliation = "Affiliation"
	colDepartment  = "Department"
	colCategory    = "Category"
	colSubcategory = "Subcategory"
	colCountry     = "Country"
	colCity        = "City"
	colStatus      = "Status"
)

// ReadCSV reads the stakeholder input table. Files that are not valid
// UTF-8 are decoded as Latin-1, so extended Latin characters survive
// either way.
func ReadCSV(path string) ([]models.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stakeholder table: %w", err)
	}
	return parseCSV(data)
}

func parseCSV(data []byte) ([]models.Row, error) {
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stakeholder table: %w", err)
		}
		data = decoded
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	var rows []models.Row
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(fields) {
				return ""
			}
			return fields[i]
		}
		rows = append(rows, models.Row{
			Name:        cell(colName),
			Position:    cell(colPosition),
			Affiliation: cell(colAffiliation),
			Department:  cell(colDepartment),
			Category:    cell(colCategory),
			Subcategory: cell(colSubcategory),
			Country:     cell(colCountry),
			City:        cell(colCity),
			Status:      cell(colStatus),
		})
	}
	return rows, nil
}
