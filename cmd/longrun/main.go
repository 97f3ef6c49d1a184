// Command longrun scaffolds the long-running development harness for a
// project: a feature checklist, a session progress log, and an environment
// bootstrap script under long_running/<feature-name>/.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/longrun/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
