package commands

import (
	"fmt"

	"github.com/setanarut/bmpgrad"
	"github.com/spf13/cobra"
)

func newLayoutCmd() *cobra.Command {
	var width, height int
	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "Show the BMP layout for an image size",
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return err
			}
			if width < 0 || height < 0 {
				return fmt.Errorf("width and height must not be negative")
			}
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			size := bmpgrad.BMPSize(width, height)
			cmd.Printf("padding:     %d bytes per row\n", bmpgrad.RowPadding(width))
			cmd.Printf("row stride:  %d bytes\n", bmpgrad.RowStride(width))
			cmd.Printf("data offset: %d\n", bmpgrad.HeaderLen)
			cmd.Printf("image size:  %d bytes\n", size)
			cmd.Printf("file size:   %d bytes\n", size+bmpgrad.HeaderLen)
		},
	}
	layoutCmd.Flags().IntVar(&width, "width", 0, "Image width in pixels.")
	layoutCmd.Flags().IntVar(&height, "height", 0, "Image height in pixels.")
	layoutCmd.MarkFlagRequired("width")
	layoutCmd.MarkFlagRequired("height")
	return layoutCmd
}
