package dataset

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"oilstcli/internal/errors"
)

// readExcelTable loads the first sheet of an .xlsx file into a table.
// Excelize returns every cell as a string, which is exactly what the zip
// code prefix columns need: no numeric inference, no lost leading zeros.
func readExcelTable(path, source string, required []string) (*table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewSourceNotFoundError(source, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to open source %s", source), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewSchemaError(source, required[0])
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to read sheet of source %s", source), err)
	}

	return newTable(source, rows, required)
}
