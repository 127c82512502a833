package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/addonsync/internal/cli"
	"github.com/jacksmith/addonsync/internal/model"
	"github.com/jacksmith/addonsync/internal/ops"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <export.json>",
	Short: "Show the addons in an exported settings file",
	Long: `Load an exported Stremio settings file and list the addons found at
addons.addons, in the order they would be synced.

Nothing is sent anywhere.

Examples:
  addonsync inspect stremio-export.json`,
	Args:              cobra.ExactArgs(1),
	RunE:              runInspect,
	ValidArgsFunction: completeExportFiles,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, log, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := model.FileFromPath(args[0])
	if err != nil {
		return err
	}

	// No remote calls are made, so no syncer is needed
	ctrl := ops.NewController(nil, log)
	if err := ctrl.LoadFile(f); err != nil {
		return err
	}
	fmt.Println(cli.Status(ctrl.Message()))

	addons := ctrl.Addons()
	if !addons.IsList || len(addons.Items) == 0 {
		return nil
	}

	fmt.Println()
	printAddonTable(addons)
	return nil
}

func printAddonTable(addons model.Collection) {
	table := cli.NewTable()
	table.SetMaxWidth(4, cli.DefaultMaxURLWidth)
	table.AddRow(cli.Gray("#"), cli.Gray("NAME"), cli.Gray("VERSION"), cli.Gray("FLAGS"), cli.Gray("URL"))

	for i, d := range addons.Describe() {
		name := d.Manifest.Name
		if name == "" {
			name = d.Manifest.ID
		}
		if name == "" {
			name = "?"
		}
		table.AddRow(strconv.Itoa(i+1), name, d.Manifest.Version, addonFlags(d), d.TransportURL)
	}

	table.Render(os.Stdout)
}

func addonFlags(d model.Descriptor) string {
	var flags []string
	if d.Flags.Official {
		flags = append(flags, cli.Gray("official"))
	}
	if d.Flags.Protected {
		flags = append(flags, cli.Yellow("protected"))
	}
	return strings.Join(flags, ",")
}
