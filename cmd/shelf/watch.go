// Watch command: follow catalog changes until interrupted.
package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bibliofile/bibliofile/internal/vault"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload the catalog on document changes and print each revision",
	Long: `Watch performs an initial load, then watches the vault directory and
reloads whenever a markdown document is created, modified, renamed, or
deleted. Each published revision is printed with its item count. Stop
with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l, _, snap, err := openCatalog(ctx)
	if err != nil {
		return err
	}
	defer l.Close()

	w, err := vault.NewWatcher(cfg.VaultDir, newLogger())
	if err != nil {
		return fmt.Errorf("watching %s: %w", cfg.VaultDir, err)
	}
	defer w.Close()

	subID, snaps := l.Subscribe()
	defer l.Unsubscribe(subID)

	fmt.Printf("revision %d: %d items\n", snap.Revision, len(snap.Items))
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-w.Events():
			if !ok {
				return nil
			}
			l.Notify()
		case s, ok := <-snaps:
			if !ok {
				return nil
			}
			fmt.Printf("revision %d: %d items\n", s.Revision, len(s.Items))
		}
	}
}
