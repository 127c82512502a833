package main

import "github.com/spf13/cobra"

// completeExportFiles offers .json files for the export argument. The
// completion command itself is the one cobra adds to the root.
func completeExportFiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"json"}, cobra.ShellCompDirectiveFilterFileExt
}
