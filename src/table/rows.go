// Package table renders truth tables for logic expressions, either as LaTeX
// tabular blocks or as bordered terminal tables.
package table

// rowCount is the number of assignments over n variables.
func rowCount(numVars int) int {
	return 1 << numVars
}

// rowAssignment derives the assignment for one table row. The row index is
// read as a little-endian bit pattern over the sorted variable list, and an
// even bit means true. Row 0 is the all-true row; this parity matches the
// established table output and must not change.
func rowAssignment(vars []string, row int) map[string]bool {
	assignment := make(map[string]bool, len(vars))
	for k, name := range vars {
		assignment[name] = (row>>k)&1 == 0
	}
	return assignment
}
