// fricas is a command line frontend for the FriCAS computer algebra
// system.
package main

import (
	"os"

	"github.com/Foadsf/fricas-pro-cli/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
