// cmd/ollamatool/main.go
package main

import (
	cmd "github.com/mwiater/ollamatool/internal/cli"
)

// main starts the ollamatool CLI by delegating to the cobra root command
// defined in the cli package.
func main() {
	cmd.Execute()
}
