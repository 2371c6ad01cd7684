// Package table renders rows as box-drawn terminal text.
//
// Column widths come from the widest visible cell, so cells may carry ANSI
// styling from the style package without breaking alignment. Lines are
// produced lazily and carry no line terminator:
//
//	lines, err := table.Render([]table.Row{
//		{"name", "age"},
//		{"Johnson", 25},
//		{"Jane", 24},
//	}, table.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	for line := range lines {
//		fmt.Println(line)
//	}
//
// Rows must all have the same number of cells; a mismatch is reported as
// ErrRaggedRows before any line is produced.
package table
