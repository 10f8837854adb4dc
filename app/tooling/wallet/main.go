// This program is a command line wallet for inspecting a Solana account
// without the interactive menu.
package main

import (
	"github.com/ardanlabs/chaindemo/app/tooling/wallet/cmd"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {
	cmd.Execute(build)
}
