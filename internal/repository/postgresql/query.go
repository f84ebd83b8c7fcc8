package postgresql

import (
	"fmt"
	"sort"
	"strings"
)

// setClauses turns a column->value map into "col = $n" fragments. Columns
// are sorted so the generated SQL is stable.
func setClauses(updates map[string]interface{}) (string, []interface{}) {
	cols := make([]string, 0, len(updates))
	for col := range updates {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	clauses := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols)+1)
	for i, col := range cols {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, updates[col])
	}
	return strings.Join(clauses, ", "), args
}
