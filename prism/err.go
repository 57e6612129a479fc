package prism

import "fmt"

// Handle panics when err is non nil, prefixing it with the formatted
// description. For setup paths where a failure leaves nothing to clean
// up or retry.
func Handle(err error, desc string, args ...any) {
	if err == nil {
		return
	}

	panic(fmt.Sprintf(desc, args...) + ": " + err.Error())
}
