// Package month maps zero-based month indexes to their English names.
package month

var names = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Name returns the month name for a zero-based index (0 = January).
// The boolean is false when the index is outside 0-11.
func Name(index int) (string, bool) {
	if index < 0 || index >= len(names) {
		return "", false
	}
	return names[index], true
}
