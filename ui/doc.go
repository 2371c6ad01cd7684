// Package ui provides the styled chrome of the console CLI.
//
// Section headers and label/value pairs are drawn with charmbracelet/lipgloss
// using the same 16-color palette as the style package, and tables are
// assembled row by row on top of the table package:
//
//	header := ui.NewHeader("Colors").WithNote("16-color ANSI").WithMargin()
//	fmt.Println(header.Render())
//
//	out, err := ui.NewTable(style.New()).
//		WithHeaders("name", "code").
//		AddRow("red", 31).
//		AddRow("green", 32).
//		Render()
//
// Semantic colors:
//   - Light green: success
//   - Light red: errors
//   - Light yellow: warnings
//   - Light blue: information
//   - Light magenta: headers, emphasis
//   - Light cyan: data values
//   - Gray: muted text, secondary information
package ui
