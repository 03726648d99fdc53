package repo

import "strings"

// insertStatement builds a full INSERT for the given columns, preserving
// their order, and returns the bound values alongside.
func insertStatement(table string, columns []ColumnValue) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (")

	values := make([]any, len(columns))
	for i, cv := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cv.Column)
		values[i] = cv.Value
	}

	sb.WriteString(") VALUES (")
	sb.WriteString(placeholders(len(columns)))
	sb.WriteString(")")

	return sb.String(), values
}

func selectByIDStatement(table, idColumn string, columns []string) string {
	return "SELECT " + strings.Join(columns, ", ") + " FROM " + table +
		" WHERE " + idColumn + " = ?"
}

func selectAllStatement(table string, columns []string) string {
	return "SELECT " + strings.Join(columns, ", ") + " FROM " + table
}

func selectInStatement(table, idColumn string, columns []string, n int) string {
	return "SELECT " + strings.Join(columns, ", ") + " FROM " + table +
		" WHERE " + idColumn + " IN (" + placeholders(n) + ")"
}

func existsStatement(table, idColumn string) string {
	return "SELECT " + idColumn + " FROM " + table + " WHERE " + idColumn + " = ? LIMIT 1"
}

func countStatement(table string) string {
	return "SELECT COUNT(*) FROM " + table
}

func deleteStatement(table, idColumn string) string {
	return "DELETE FROM " + table + " WHERE " + idColumn + " = ?"
}

func truncateStatement(table string) string {
	return "TRUNCATE " + table
}

// placeholders renders n comma-separated ? markers.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
	}

	return sb.String()
}
