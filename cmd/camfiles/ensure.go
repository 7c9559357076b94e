package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/camfiles/pkg/camfiles"
)

func newEnsureDirCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-dir PATH...",
		Short: "Make sure directories exist",
		Long:  "Create each directory, with any missing parents, unless it already exists. Fails for paths that exist as files.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ensureEach(cmd, args, a.helper.EnsureDirectory)
		},
	}
}

func newEnsureFileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-file PATH...",
		Short: "Make sure files exist",
		Long:  "Create each file empty, with any missing parent directories, unless it already exists. Fails for paths that exist as directories.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ensureEach(cmd, args, a.helper.EnsureFile)
		},
	}
}

// ensureEach applies ensure to every argument and reports each outcome.
func ensureEach(cmd *cobra.Command, args []string, ensure func(*camfiles.Path) camfiles.Result) error {
	out := cmd.OutOrStdout()
	failures := 0
	for _, arg := range args {
		res := ensure(camfiles.ResolvePath(arg))
		if res.OK {
			fmt.Fprintf(out, "ok\t%s\n", arg)
			continue
		}
		failures++
		fmt.Fprintf(out, "failed\t%s\t%v\n", arg, res.Err)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d paths failed", failures, len(args))
	}
	return nil
}
