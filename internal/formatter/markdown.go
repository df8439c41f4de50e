// Package formatter renders actress records as aligned markdown tables.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"actresses/internal/models"
	"actresses/pkg/utils"
)

const (
	maxCellWidth = 40
	emptyCell    = "-"
)

var header = []string{"#", "ID", "Name", "Born", "Died", "Nationality", "Most famous movies", "Awards"}

// ActressTable renders one row per slot. A nil slot renders as a row of "-",
// so positions stay visible for batch results.
func ActressTable(actresses []*models.Actress) string {
	strs := utils.NewStringHelper()

	rows := make([][]string, 0, len(actresses)+1)
	rows = append(rows, header)

	for i, a := range actresses {
		pos := strconv.Itoa(i + 1)

		if a == nil {
			row := []string{pos}
			for range header[1:] {
				row = append(row, emptyCell)
			}

			rows = append(rows, row)

			continue
		}

		died := emptyCell
		if a.DeathYear != nil {
			died = strconv.Itoa(*a.DeathYear)
		}

		rows = append(rows, []string{
			pos,
			strconv.Itoa(a.ID),
			cell(strs, a.Name),
			strconv.Itoa(a.BirthYear),
			died,
			cell(strs, string(a.Nationality)),
			cell(strs, strings.Join(a.MostFamousMovies[:], ", ")),
			cell(strs, a.Awards),
		})
	}

	return strings.Join(renderTable(rows), "\n")
}

// ActressList renders records from a collection fetch.
func ActressList(actresses []models.Actress) string {
	ptrs := make([]*models.Actress, len(actresses))
	for i := range actresses {
		ptrs[i] = &actresses[i]
	}

	return ActressTable(ptrs)
}

func cell(strs *utils.StringHelper, s string) string {
	s = strs.NormalizeWhitespace(s)
	if s == "" {
		return emptyCell
	}

	s = strs.TruncateString(s, maxCellWidth)

	return strings.ReplaceAll(s, "|", `\|`)
}

// renderTable pads every cell to its column's display width. rows[0] is the header;
// a separator row is inserted after it.
func renderTable(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}

	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	colWidths := make([]int, colCount)

	for _, row := range rows {
		for i, content := range row {
			if width := runewidth.StringWidth(content); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separators need at least "---".
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	result := make([]string, 0, len(rows)+1)

	for i, row := range rows {
		result = append(result, renderRow(row, colWidths, false))

		if i == 0 {
			result = append(result, renderRow(nil, colWidths, true))
		}
	}

	return result
}

func renderRow(row []string, colWidths []int, separator bool) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		sb.WriteString(" ")

		if separator {
			sb.WriteString(strings.Repeat("-", width))
		} else {
			content := ""
			if j < len(row) {
				content = row[j]
			}

			sb.WriteString(content)

			if padding := width - runewidth.StringWidth(content); padding > 0 {
				sb.WriteString(strings.Repeat(" ", padding))
			}
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
