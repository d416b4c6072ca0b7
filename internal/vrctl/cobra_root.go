package vrctl

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"vrhal/pkg/types"
)

// BuildRootCmd constructs the vrctl command tree. All subcommands talk to a
// running vrhald over its diagnostics API.
func BuildRootCmd() *cobra.Command {
	defaultAddr := "http://127.0.0.1:8080"
	if v := os.Getenv("VRHALD_ADDR"); v != "" {
		defaultAddr = v
	}

	var addr string
	var asJSON bool

	root := &cobra.Command{
		Use:           "vrctl",
		Short:         "Inspect a running vrhald daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "Base URL of the vrhald API (defaults VRHALD_ADDR)")
	root.PersistentFlags().BoolVar(&asJSON, "json", false, "Emit raw JSON instead of tables")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show daemon state, frame count and render target size",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := NewClient(addr).Status(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(st)
			}
			renderStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}

	trackersCmd := &cobra.Command{
		Use:   "trackers",
		Short: "List registered trackers with pose and model state",
		RunE: func(cmd *cobra.Command, args []string) error {
			trackers, err := NewClient(addr).Trackers(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(trackers)
			}
			renderTrackers(cmd.OutOrStdout(), trackers)
			return nil
		},
	}

	trackerCmd := &cobra.Command{
		Use:   "tracker <slot>",
		Short: "Show one tracker slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("slot must be an unsigned integer: %q", args[0])
			}
			tr, err := NewClient(addr).Tracker(cmd.Context(), uint32(slot))
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(tr)
			}
			renderTrackers(cmd.OutOrStdout(), []types.TrackerStatus{tr})
			return nil
		},
	}

	var interval time.Duration
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the tracker table until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := NewClient(addr)
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				trackers, err := client.Trackers(cmd.Context())
				if err != nil {
					return err
				}
				renderTrackers(cmd.OutOrStdout(), trackers)
				fmt.Fprintln(cmd.OutOrStdout())
				select {
				case <-cmd.Context().Done():
					return nil
				case <-ticker.C:
				}
			}
		},
	}
	watchCmd.Flags().DurationVar(&interval, "interval", time.Second, "Poll interval")

	root.AddCommand(statusCmd, trackersCmd, trackerCmd, watchCmd)

	completionCmd := &cobra.Command{Use: "completion", Short: "Generate the autocompletion script for the specified shell"}
	completionCmd.AddCommand(&cobra.Command{Use: "bash", Short: "Bash completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenBashCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "zsh", Short: "Zsh completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenZshCompletion(os.Stdout) }})
	completionCmd.AddCommand(&cobra.Command{Use: "fish", Short: "Fish completion", RunE: func(cmd *cobra.Command, args []string) error { return root.GenFishCompletion(os.Stdout, true) }})
	root.AddCommand(completionCmd)

	return root
}
