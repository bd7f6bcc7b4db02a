package tabular

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"claimstat/domain/core"
)

// TableReader handles reading CSV and Excel files into tables
type TableReader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// NewTableReader creates a reader that handles both CSV and Excel files,
// dispatching on file extension.
func NewTableReader(filePath string) *TableReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &TableReader{filePath: filePath, fileType: fileType}
}

// Read loads the file into an immutable Table
func (r *TableReader) Read() (*Table, error) {
	log.Printf("[TableReader] reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, core.NewDataFormatError(r.filePath, "file not found")
	}

	switch r.fileType {
	case "csv":
		return r.readCSV()
	case "xlsx":
		return r.readExcel()
	default:
		return nil, core.NewDataFormatError(r.filePath, "unsupported file type: "+r.fileType)
	}
}

// readCSV reads delimited data into a Table
func (r *TableReader) readCSV() (*Table, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, core.NewDataFormatError(r.filePath, err.Error())
	}
	defer file.Close()

	reader := csv.NewReader(file)
	readStart := time.Now()
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, core.NewDataFormatError(r.filePath, err.Error())
	}
	log.Printf("[TableReader] CSV read in %.2fms (%d rows)",
		float64(time.Since(readStart).Nanoseconds())/1e6, len(rows))

	return r.processRows(rows)
}

// readExcel reads Sheet1 of a workbook into a Table
func (r *TableReader) readExcel() (*Table, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, core.NewDataFormatError(r.filePath, err.Error())
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, core.NewDataFormatError(r.filePath, "failed to read Sheet1: "+err.Error())
	}

	// Excel rows can be ragged on trailing empty cells; pad to header width
	if len(rows) > 0 {
		width := len(rows[0])
		for i, row := range rows {
			for len(row) < width {
				row = append(row, "")
			}
			rows[i] = row
		}
	}

	return r.processRows(rows)
}

// processRows converts raw string rows into a Table
func (r *TableReader) processRows(rows [][]string) (*Table, error) {
	if len(rows) < 2 {
		return nil, core.NewDataFormatError(r.filePath, "need a header row and at least one data row")
	}

	name := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	return NewTable(name, rows[0], rows[1:])
}
