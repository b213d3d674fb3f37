package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/config"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/generator"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/internal/utils"
	"github.com/WolfzTech/MaterialDesignInXamlToolkit/pkg/logging"
)

// For mocking in tests
var osGetwd = os.Getwd

var generateVerbose bool

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate all brush resource artifacts",
		Long: `Regenerate the theme dictionaries, the obsolete brush aliases, and
the Theme accessor class from the brush definitions file. This is the
same action the bare brushgen command performs.`,
		RunE: runGenerate,
	}
	cmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	level := logging.LevelInfo
	if generateVerbose {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, os.Stderr)

	wd, err := osGetwd()
	if err != nil {
		return fmt.Errorf("determining working directory: %w", err)
	}

	repoRoot, err := utils.FindRepositoryRoot(wd)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("✘ "+err.Error()))
		return err
	}
	logging.Debug("Generate", "Using repository root %s", repoRoot)

	settings, err := config.LoadSettings(repoRoot)
	if err != nil {
		return err
	}

	if err := generator.New(settings, repoRoot).Run(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("✘ brush generation failed"))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✔ brush resources regenerated"))
	return nil
}
