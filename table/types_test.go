package table_test

type Address struct {
	City string
	Zip  string
}

type Pet struct {
	Name string
	Tags []string
}

type Person struct {
	Name     string
	Age      int
	Email    string
	Nickname string `table:"nick"`
	Address  *Address
	Tags     []string
	Pets     []Pet
	Scores   map[string]int
	Top      [3]int
	Ranks    [2]string
	Version  int `table:",readonly"`
	Callback func()
}
