package main

import (
	"fmt"
	"io"
	"os"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// console is where command output goes; tests swap it for a buffer
var console io.Writer = os.Stdout

func printLine(color, marker, format string, a ...interface{}) {
	fmt.Fprintf(console, "%s%s %s%s\n", color, marker, fmt.Sprintf(format, a...), colorReset)
}

func PrintInfo(format string, a ...interface{})    { printLine(colorBlue, "ℹ", format, a...) }
func PrintSuccess(format string, a ...interface{}) { printLine(colorGreen, "✓", format, a...) }
func PrintWarning(format string, a ...interface{}) { printLine(colorYellow, "⚠", format, a...) }
func PrintError(format string, a ...interface{})   { printLine(colorRed, "✗", format, a...) }

func PrintHeader(title string) {
	fmt.Fprintf(console, "\n%s=== %s ===%s\n", colorYellow, title, colorReset)
}
