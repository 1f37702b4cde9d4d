package app

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const snapshotPrefix = "vendora-"

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJobs() {
	a.sched = cron.New(cron.WithParser(cronParser))

	if !a.appConfig.Snapshot.Enable {
		return
	}
	if err := a.ScheduleSnapshots(); err != nil {
		zap.S().Errorf("init snapshot job error %s", err.Error())
	}
}

// ScheduleSnapshots registers the periodic snapshot job. The scheduler
// still has to be started via StartBackgroundJobs.
func (a *Application) ScheduleSnapshots() error {
	_, err := a.sched.AddFunc(a.appConfig.Snapshot.Cron, func() {
		if path, err := a.RunSnapshot(); err != nil {
			zap.S().Errorf("snapshot job failed: %v", err)
		} else {
			zap.S().Infof("snapshot written: %s", path)
		}
	})
	return err
}

// RunSnapshot exports the whole document into the backup directory and
// prunes old snapshots down to the configured keep count.
func (a *Application) RunSnapshot() (string, error) {
	data, err := a.dataStore.Export()
	if err != nil {
		return "", err
	}

	dir := a.appConfig.BackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create backup dir")
	}

	name := snapshotPrefix + time.Now().Format("2006-01-02-150405") + ".json"
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		return "", errors.Wrap(err, "write snapshot")
	}

	if err := pruneSnapshots(dir, a.appConfig.Snapshot.Keep); err != nil {
		zap.S().Warnf("failed to prune snapshots: %v", err)
	}
	return path, nil
}

// pruneSnapshots deletes the oldest snapshot files beyond keep. Snapshot
// names embed their timestamp, so lexical order is chronological order.
func pruneSnapshots(dir string, keep int) error {
	if keep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), snapshotPrefix) && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	if len(names) <= keep {
		return nil
	}
	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return err
		}
	}
	return nil
}
