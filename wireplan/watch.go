package wireplan

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watchTopology recompiles the plan whenever the topology file is written, until ctx is done.
func (m *manager) watchTopology(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	defer func() {
		_ = watcher.Close()
	}()

	// watch the directory, editors often replace the file rather than write it in place
	err = watcher.Add(filepath.Dir(m.topologyPath))
	if err != nil {
		m.logger.Error("error setting up topology watch", "err", err)

		return err
	}

	m.watchReadyOnce.Do(func() {
		close(m.watchReady)
	})

	m.logger.Info("watching topology for changes", "topology", m.topologyPath)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("topology watch stopped")

			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("%w: topology watch events closed", ErrTopology)
			}

			m.logger.Debug("got topology watch event", "event", event.String())

			if event.Name == m.topologyPath &&
				(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				m.reloadTopology()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("%w: topology watch errors closed", ErrTopology)
			}

			m.logger.Error("topology watch failed", "err", watchErr)

			return watchErr
		}
	}
}
