package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:              "version",
	TraverseChildren: true,
	Short:            "returns version ",
	Long: `returns version
`,
	Run: func(cmd *cobra.Command, args []string) {
		log.Info("version called")

		fmt.Println("Version: " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
