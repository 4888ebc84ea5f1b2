package driver

import (
	"strconv"
	"strings"
)

// TranslatePlaceholders rewrites each generic '?' marker, left to right, into
// the database's 1-based positional form ":1", ":2", ... Input without any
// marker is returned unchanged without allocating.
//
// The substitution is deliberately naive about '?' occurring inside quoted
// string literals; callers that embed literal question marks must bind them
// as parameters instead.
func TranslatePlaceholders(sql string) string {
	n := strings.Count(sql, "?")
	if n == 0 {
		return sql
	}
	var b strings.Builder
	b.Grow(len(sql) + n*2)
	ordinal := 1
	for i := 0; i < len(sql); i++ {
		if sql[i] != '?' {
			b.WriteByte(sql[i])
			continue
		}
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(ordinal))
		ordinal++
	}
	return b.String()
}
