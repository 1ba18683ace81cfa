package postgres

import (
	"strconv"
	"strings"
)

// placeholders renders "($start, $start+1, ...)" for n columns.
func placeholders(start, n int) string {
	var sb strings.Builder
	sb.WriteString("(")
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("$")
		sb.WriteString(strconv.Itoa(start + i))
	}
	sb.WriteString(")")
	return sb.String()
}
