package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencil-dev/stencil-cli/internal/runtime"
	"github.com/stencil-dev/stencil-cli/update"
)

// Default placeholder value
var Version = "development"

func New(runtimeContext *runtime.Context) *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the stencil version",
		Long:  "This command prints the current version of stencil",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("stencil", Version)
			update.NewChecker(runtimeContext.Logger).Check(Version)
			return nil
		},
	}

	return versionCmd
}
