package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List image assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := conn.Assets(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tORIGINAL\tCREATED")
		for _, asset := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", asset.ID, asset.Status, asset.OriginalPath, asset.CreatedAt)
		}
		return w.Flush()
	},
}

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		res, err := conn.Upload(cmd.Context(), filepath.Base(args[0]), f)
		if err != nil {
			return err
		}
		fmt.Printf("uploaded %s -> %s\n", res.Filename, res.StorageKey)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(uploadCmd)
}
