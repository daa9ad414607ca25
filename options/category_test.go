package options_test

import (
	"fmt"

	"table-binder/options"
)

func ExampleCategoryEnum_Has() {
	allowed := options.CategoryTextualBool | options.CategorySeconds

	fmt.Println(allowed.Has(options.CategoryTextualBool))
	fmt.Println(allowed.Has(options.CategoryTimestamp))
	fmt.Println(options.CategoryAll.Has(allowed))
	fmt.Println(options.CategoryNone.Has(options.CategorySeconds))
	// Output:
	// true
	// false
	// true
	// false
}
