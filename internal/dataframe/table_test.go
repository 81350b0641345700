package dataframe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Append_PadsAndTruncates(t *testing.T) {
	table := New([]string{"SalesRep", "Amount", "Stage"})

	table.Append([]string{"Alice"})
	table.Append([]string{"Bob", "1200", "Won", "extra"})

	require.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"Alice", "", ""}, table.Row(0))
	assert.Equal(t, []string{"Bob", "1200", "Won"}, table.Row(1))
}

func TestTable_HasColumn(t *testing.T) {
	table := New([]string{"SalesRep", "Amount"})

	assert.True(t, table.HasColumn("Amount"))
	assert.False(t, table.HasColumn("Stage"))
	assert.False(t, table.HasColumn("amount")) // case sensitive
}

func TestTable_Cell(t *testing.T) {
	table := New([]string{"SalesRep", "Amount"})
	table.Append([]string{"Alice", "100"})

	assert.Equal(t, "100", table.Cell(0, "Amount"))
	assert.Equal(t, "", table.Cell(0, "Missing"))
}

func TestTable_Numeric(t *testing.T) {
	table := New([]string{"Amount"})
	for _, v := range []string{"100", "1,200.50", "  300 ", "", "abc"} {
		table.Append([]string{v})
	}

	values := table.Numeric("Amount")
	require.Len(t, values, 5)
	assert.Equal(t, 100.0, values[0])
	assert.Equal(t, 1200.5, values[1])
	assert.Equal(t, 300.0, values[2])
	assert.True(t, math.IsNaN(values[3]))
	assert.True(t, math.IsNaN(values[4]))
}

func TestTable_Numeric_MissingColumn(t *testing.T) {
	table := New([]string{"Stage"})
	assert.Nil(t, table.Numeric("Amount"))
}

func TestTable_NumericFilled(t *testing.T) {
	table := New([]string{"Amount"})
	for _, v := range []string{"100", "", "300"} {
		table.Append([]string{v})
	}

	assert.Equal(t, []float64{100, 0, 300}, table.NumericFilled("Amount"))
}

func TestTable_Binary(t *testing.T) {
	table := New([]string{"Closed"})
	cells := []string{"1", "0", "TRUE", "false", "Yes", "no", "Won", "", "2", "-1", "maybe"}
	for _, v := range cells {
		table.Append([]string{v})
	}

	want := []int{1, 0, 1, 0, 1, 0, 1, 0, 1, 1, 0}
	assert.Equal(t, want, table.Binary("Closed"))
}

func TestTable_BinaryDropEmpty(t *testing.T) {
	table := New([]string{"Closed"})
	for _, v := range []string{"1", "", "0", "  ", "Won"} {
		table.Append([]string{v})
	}

	assert.Equal(t, []int{1, 0, 1}, table.BinaryDropEmpty("Closed"))
	assert.Nil(t, table.BinaryDropEmpty("Missing"))
}

func TestNew_DuplicateColumnsKeepFirst(t *testing.T) {
	table := New([]string{"A", "B", "A"})
	table.Append([]string{"first", "mid", "second"})

	assert.Equal(t, 0, table.ColumnIndex("A"))
	assert.Equal(t, "first", table.Cell(0, "A"))
}
