package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// NewRootCommand builds the command tree. Each call returns fresh flag state.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bmpgrad",
		Short:         "Render four-corner gradients to BMP files",
		Long:          `bmpgrad renders a gradient between four corner colours and writes it as an uncompressed 24-bit BMP file.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newLayoutCmd())
	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	rootCmd.SetOut(os.Stdout)
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}
