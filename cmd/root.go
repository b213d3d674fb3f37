package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// Invoking brushgen with no arguments runs a full regeneration, since
// that is the only thing the tool does.
var rootCmd = &cobra.Command{
	Use:   "brushgen",
	Short: "Regenerate the Material Design brush resources",
	Long: `brushgen reads the toolkit's brush definitions and regenerates the
derived resources: the light and dark theme dictionaries, the obsolete
brush alias dictionary, and the strongly-typed Theme accessor class.

Every run is a complete rebuild of all artifacts from the full
definition set.`,
	// SilenceUsage is set to true to prevent printing usage message on
	// generation failures
	SilenceUsage: true,
	RunE:         runGenerate,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "brushgen version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newVersionCmd())
}
