package testkit

import (
	"tabstat/adapters/excel"
	"tabstat/domain/table"
	"tabstat/internal"
)

// PassengerTable is the small passenger dataset used to demonstrate column
// removal: name, price, travel and ticket code for three passengers.
func PassengerTable() *table.Table {
	t, err := table.FromRows(
		[]string{"name", "price", "travel", "ticket"},
		[][]string{
			{"João", "100", "RJ", "A123"},
			{"Maria", "150", "SP", "B456"},
			{"Pedro", "200", "MG", "C789"},
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// TravelTable mimics a raw travel spreadsheet: lower-case destinations,
// plain numeric prices (one missing) and a ticket column to drop.
func TravelTable() *table.Table {
	t, err := table.FromRows(
		[]string{"NAME", "PRICE", "TRAVEL", "TICKET"},
		[][]string{
			{"João", "1234.5", "são paulo", "A123"},
			{"Maria", "150", "rio de janeiro", "B456"},
			{"Pedro", "", "BELO HORIZONTE", "C789"},
			{"Ana", "0.005", "santa rita do sapucaí", "D012"},
			{"Luís", "2500000", "", "E345"},
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// Sample is a small numeric sample with an outlier
func Sample() []float64 {
	return []float64{12, 15, 11, 14, 13, 15, 16, 12, 40}
}

// WriteTable saves t to path (xlsx or csv) with errors-only logging
func WriteTable(path string, t *table.Table) error {
	logger := internal.NewLogger(internal.LogLevelError)
	return excel.NewDataWriter(path, "", logger).WriteTable(t)
}
