package table_test

import (
	"fmt"

	"table-binder/table"
)

func Example() {
	fixture := []byte(`
header: [Name, "Pets[0].Name", "Pets[0].Tags[0]", "Pets[1].Name"]
rows:
  - [Ann, Rex, good, Tom]
  - [Bob, Fido, loud, Kit]
`)

	tbl, err := table.Parse(fixture)
	if err != nil {
		panic(err)
	}

	people, err := table.CreateInstances[Person](tbl)
	if err != nil {
		panic(err)
	}

	for _, p := range people {
		fmt.Println(p.Name, p.Pets)
	}

	// Output:
	// Ann [{Rex [good]} {Tom []}]
	// Bob [{Fido [loud]} {Kit []}]
}

func ExampleCheck() {
	tbl := table.Table{Header: []string{"Name", "Adress.City", "Version"}}

	diags := table.Check[Person](tbl)
	for _, d := range diags.All() {
		fmt.Println(d)
	}

	// Output:
	// [table_test.Person] Adress.City: [unknown-member] table_test.Person has no member "Adress", the column is skipped (did you mean Address?)
	// [table_test.Person] Version: [read-only-member] member Version of table_test.Person is read only, the column is skipped
}
