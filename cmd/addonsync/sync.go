package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jacksmith/addonsync/internal/cli"
	"github.com/jacksmith/addonsync/internal/model"
	"github.com/jacksmith/addonsync/internal/stremio"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <export.json>",
	Short: "Replace your Stremio addons with the ones in an export",
	Long: `Load the addon list at addons.addons of an exported settings file and send
it to Stremio, replacing the addon collection of the account the auth key
belongs to.

The auth key is taken from --auth-key. When the flag is omitted and stdin
is a terminal, it is prompted for without echo. It is never stored.

With --edit, the addon list opens in $VISUAL or $EDITOR before it is sent,
so addons can be reordered or removed. Saving an empty file aborts.

With --dry-run, the request body is printed (auth key redacted) and
nothing is sent.

To find your auth key, log in at https://web.stremio.com and run this in
the browser console:
  JSON.parse(localStorage.getItem("profile")).auth.key

Examples:
  addonsync sync stremio-export.json
  addonsync sync stremio-export.json --auth-key "$STREMIO_AUTH_KEY"
  addonsync sync stremio-export.json --edit
  addonsync sync stremio-export.json --dry-run`,
	Args:              cobra.ExactArgs(1),
	RunE:              runSync,
	ValidArgsFunction: completeExportFiles,
}

var (
	syncAuthKey string
	syncEdit    bool
	syncDryRun  bool
)

// redactedKey replaces the auth key in dry-run output.
const redactedKey = "<redacted>"

func init() {
	syncCmd.Flags().StringVar(&syncAuthKey, "auth-key", "", "Stremio auth key")
	syncCmd.Flags().BoolVarP(&syncEdit, "edit", "i", false, "edit the addon list in $EDITOR before syncing")
	syncCmd.Flags().BoolVar(&syncDryRun, "dry-run", false, "print the request instead of sending it")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := model.FileFromPath(args[0])
	if err != nil {
		return err
	}

	ctrl := newController(cfg, log)
	if err := ctrl.LoadFile(f); err != nil {
		return err
	}
	fmt.Println(cli.Status(ctrl.Message()))

	if syncEdit {
		edited, err := cli.EditJSON(ctrl.Addons().Raw)
		if err != nil {
			return err
		}
		if err := ctrl.ReplaceAddons(edited); err != nil {
			return &cli.EditError{Err: err}
		}
		fmt.Println(cli.Status(ctrl.Message()))
	}

	key := syncAuthKey
	if key == "" && cli.IsTerminal(os.Stdin) {
		key, err = cli.ReadSecret(os.Stdin, os.Stderr, "Stremio auth key: ", "--auth-key")
		if err != nil {
			return err
		}
	}
	ctrl.SetCredential(key)

	if syncDryRun {
		if err := ctrl.Preflight(); err != nil {
			return err
		}
		return printRequest(ctrl.Addons().Raw, cfg.APIURL)
	}

	if err := ctrl.Sync(commandContext(cmd)); err != nil {
		return err
	}
	fmt.Println(cli.Status(ctrl.Message()))
	return nil
}

func printRequest(addons json.RawMessage, baseURL string) error {
	body, err := stremio.EncodeAddonCollectionSet(redactedKey, addons)
	if err != nil {
		return err
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		return err
	}

	fmt.Printf("POST %s\n", stremio.New(baseURL).Endpoint())
	fmt.Println(pretty.String())
	return nil
}
