package templates

import (
	"strconv"
	"strings"
)

// MinArity is the smallest generated Combine; a single source is Map.
const MinArity = 2

// prefixedStrings renders "p0, p1, ..., p<count-1>".
func prefixedStrings(prefix string, count int) string {
	names := make([]string, count)
	for i := range names {
		names[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}
