// auto-palette extracts a ranked palette of prominent colors from an image.
package main

import (
	"os"

	"github.com/autopalette-go/autopalette/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
