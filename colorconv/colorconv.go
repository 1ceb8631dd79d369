// colorconv converts colors between hex, rgb and hsl notations.
package main

import (
	"os"

	"fortio.org/devtools/colorconv/cli"
)

func main() {
	os.Exit(cli.Main())
}
