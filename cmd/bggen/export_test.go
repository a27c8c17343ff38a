package main

// Exported for testing
var (
	NewCommand = newCommand
	Report     = report
)
