package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/camfiles/pkg/camfiles"
)

func newOutputDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "output-dir",
		Short: "Print the photo output directory",
		Long:  "Print the directory captured photos are saved to: the application folder on external media when available, the internal files directory otherwise.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := a.helper.OutputDirectory(a.storage)
			if dir == "" {
				return camfiles.ErrNoStorage
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}
}

func newNewPhotoCommand(a *app) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "new-photo",
		Short: "Print a timestamped photo path",
		Long:  "Print a new yyyy-MM-dd-HH-mm-ss-SSS.jpg path inside the photo output directory, optionally creating the empty file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := camfiles.NewPhotoPath(a.helper.OutputDirectory(a.storage), time.Now())
			if p == nil {
				return camfiles.ErrNoStorage
			}
			if create {
				if res := a.helper.EnsureFile(p); !res.OK {
					return errors.Join(fmt.Errorf("failed to create %s", p), res.Err)
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "create the empty photo file")
	return cmd
}
