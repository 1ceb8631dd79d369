// texttools converts text case, counts words and generates passwords.
package main

import (
	"os"

	"fortio.org/devtools/texttools/cli"
)

func main() {
	os.Exit(cli.Main())
}
