package permutation

// Table is a matrix of Limit rows and Limit! columns stored flattened in row-major order.
// Once built, every column read top to bottom is a distinct permutation of {0, ..., Limit-1}
// and the columns appear in lexicographic order.
type Table struct {
	Limit   uint64
	Columns uint64
	Cells   []uint64
}

func newTable(limit uint64) (*Table, error) {
	columns, cells, err := cellCount(limit)
	if err != nil {
		return nil, err
	}
	return &Table{
		Limit:   limit,
		Columns: columns,
		Cells:   make([]uint64, cells),
	}, nil
}

func (table *Table) At(row, column uint64) uint64 {
	return table.Cells[table.Columns*row+column]
}

func (table *Table) set(row, column, value uint64) {
	table.Cells[table.Columns*row+column] = value
}

// previous returns the cell right above (row, column), which is 0 on the first row
func (table *Table) previous(row, column uint64) uint64 {
	if row == 0 {
		return 0
	}
	return table.At(row-1, column)
}

// Row returns a view of the given row; writes through it modify the table.
func (table *Table) Row(row uint64) []uint64 {
	return table.Cells[table.Columns*row : table.Columns*(row+1)]
}

// Column returns a copy of the given column.
func (table *Table) Column(column uint64) []uint64 {
	values := make([]uint64, table.Limit)
	for row := range table.Limit {
		values[row] = table.At(row, column)
	}
	return values
}

// ColumnMajor returns a copy of the cells laid out column after column, so that
// every permutation occupies Limit consecutive elements.
func (table *Table) ColumnMajor() []uint64 {
	cells := make([]uint64, 0, len(table.Cells))
	for column := range table.Columns {
		for row := range table.Limit {
			cells = append(cells, table.At(row, column))
		}
	}
	return cells
}
