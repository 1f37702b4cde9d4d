package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage timestamped backups of the dataset",
}

var snapshotRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Write a snapshot to the backup directory now",
	RunE:  runSnapshotRun,
}

var snapshotStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the snapshot scheduler until interrupted",
	RunE:  runSnapshotStart,
}

func init() {
	snapshotCmd.AddCommand(snapshotRunCmd)
	snapshotCmd.AddCommand(snapshotStartCmd)
}

func runSnapshotRun(cmd *cobra.Command, args []string) error {
	path, err := vendoraApp.RunSnapshot()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot written: %s\n", path)
	return nil
}

func runSnapshotStart(cmd *cobra.Command, args []string) error {
	// The cron entry is registered during Init only when snapshots are
	// enabled in config; register it here otherwise so `snapshot start`
	// always does what it says.
	if !vendoraApp.Config().Snapshot.Enable {
		if err := vendoraApp.ScheduleSnapshots(); err != nil {
			return err
		}
	}
	vendoraApp.StartBackgroundJobs()
	fmt.Printf("Snapshot scheduler running (%s), press Ctrl+C to stop.\n", vendoraApp.Config().Snapshot.Cron)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	fmt.Println("Stopping.")
	return nil
}
