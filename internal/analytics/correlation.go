package analytics

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"oilstcli/pkg/contracts/domain"
)

// baseCorrelationColumns are the numeric fields the correlation report
// always covers. distance_distribution_center joins them whenever the
// dataset carries the passthrough column.
var baseCorrelationColumns = []string{"total_products", "total_sales", "delta_days"}

const distanceColumn = "distance_distribution_center"

// CorrelationMatrix holds Pearson correlations between the numeric columns
// of the consolidated dataset.
type CorrelationMatrix struct {
	Columns []string
	Matrix  *mat.SymDense
}

// Correlate computes the Pearson correlation matrix over complete cases:
// records missing any of the selected numeric fields are dropped from the
// sample. When any record carries a distribution center distance, that
// column is correlated too. With fewer than two complete rows the matrix
// is nil.
func Correlate(records []domain.ConsolidatedRecord) CorrelationMatrix {
	withDistance := false
	for _, r := range records {
		if r.DistanceDistributionCenter != nil {
			withDistance = true
			break
		}
	}

	columns := baseCorrelationColumns
	if withDistance {
		columns = append(append([]string{}, baseCorrelationColumns...), distanceColumn)
	}

	var rows [][]float64
	for _, r := range records {
		if r.TotalProducts == nil || r.TotalSales == nil || r.DeltaDays == nil {
			continue
		}
		row := []float64{
			float64(*r.TotalProducts),
			*r.TotalSales,
			*r.DeltaDays,
		}
		if withDistance {
			if r.DistanceDistributionCenter == nil {
				continue
			}
			row = append(row, *r.DistanceDistributionCenter)
		}
		rows = append(rows, row)
	}

	result := CorrelationMatrix{Columns: columns}
	if len(rows) < 2 {
		return result
	}

	data := mat.NewDense(len(rows), len(columns), nil)
	for i, row := range rows {
		data.SetRow(i, row)
	}

	corr := mat.NewSymDense(len(columns), nil)
	stat.CorrelationMatrix(corr, data, nil)
	result.Matrix = corr
	return result
}

// Rows renders the matrix as CSV rows, one per column, with the column
// name in the first field.
func (m CorrelationMatrix) Rows() [][]string {
	rows := make([][]string, 0, len(m.Columns))
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			if m.Matrix == nil {
				row = append(row, "")
				continue
			}
			row = append(row, formatFloat(m.Matrix.At(i, j)))
		}
		rows = append(rows, row)
	}
	return rows
}

// Header returns the matrix header matching Rows.
func (m CorrelationMatrix) Header() []string {
	header := make([]string, 0, len(m.Columns)+1)
	header = append(header, "column")
	header = append(header, m.Columns...)
	return header
}
