package ui

import "fmt"

// Output helpers - use these for consistent styled output across commands.

// Title prints a styled title/header
func Title(text string) {
	fmt.Println(TitleStyle.Render(text))
}

// Success prints a success message with checkmark
func Success(text string) {
	fmt.Println(SuccessStyle.Render("✓ " + text))
}

// Error prints an error message
func Error(text string) {
	fmt.Println(ErrorStyle.Render("✗ " + text))
}

// Warning prints a warning message
func Warning(text string) {
	fmt.Println(WarningStyle.Render("! " + text))
}

// Dim prints dimmed/secondary text
func Dim(text string) {
	fmt.Println(DimStyle.Render("  " + text))
}

// Step prints a step instruction
func Step(text string) {
	fmt.Println(StepStyle.Render(text))
}

// Command prints a CLI command
func Command(text string) {
	fmt.Println(CommandStyle.Render(text))
}

// Line prints an empty line
func Line() {
	fmt.Println()
}
