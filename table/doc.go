// Package table turns fixture tables into populated instances.
//
// A Table is a header row of fieldpath paths plus data rows of raw cells. Each
// row produces one instance of the bound type:
//
//	tbl := table.Table{
//		Header: []string{"Name", "Address.City", "Tags[0]", "Tags[1]"},
//		Rows:   [][]string{{"Ann", "Metropolis", "red", "blue"}},
//	}
//	customer, err := table.CreateInstance[Customer](tbl)
//
// Headers are parsed once per table; every cell becomes one node.Request
// bound against its row's instance, left to right.
//
// Tables can also be kept in YAML files:
//
//	header: [Name, Address.City, Tags[0]]
//	rows:
//	  - [Ann, Metropolis, red]
//	  - [Bob, Gotham, ""]
//
// Check reports columns that would bind to nothing before any row is bound.
package table
