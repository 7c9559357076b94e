package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCacheDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cache-dir",
		Short: "Print the image cache directory",
		Long:  "Print the image cache directory, creating it if needed. External storage is used when mounted, the internal cache directory otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.helper.ImageCacheDirectory(a.storage))
			return nil
		},
	}
}

func newClearCacheCommand(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "clear-cache",
		Short: "Delete cached images",
		Long:  "Delete the files directly inside the image cache directory. Subdirectories are left alone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.helper.ClearCache(a.storage)
			out := cmd.OutOrStdout()
			if list {
				for _, name := range res.Removed {
					fmt.Fprintln(out, name)
				}
			}
			fmt.Fprintf(out, "removed %d files from %s\n", len(res.Removed), res.Dir)
			if res.Err != nil {
				return fmt.Errorf("cache not fully cleared: %w", res.Err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "print each deleted file")
	return cmd
}
