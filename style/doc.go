// Package style applies 16-color ANSI styling to terminal text.
//
// An Engine wraps text in SGR set/unset sequences built from a fixed table
// of foreground colors, background colors and attributes:
//
//	e := style.New()
//	fmt.Println(e.Apply("deploy failed", style.Red, style.NoColor, style.Bold))
//	fmt.Println(e.Link("https://example.com"))
//
//	yellowBack, err := e.Named("yellowBack")
//	if err != nil {
//		return err
//	}
//	fmt.Println(yellowBack("warning"))
//
// Strip and Width measure styled text by what the terminal actually shows,
// which is what the table package uses to align columns.
package style
