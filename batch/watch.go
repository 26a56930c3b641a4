package batch

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Watch frames images as they appear in the input directory, which must
// already exist. It blocks until ctx is cancelled or the watcher fails.
// Producers may emit a Create event before the file is fully written; the
// resulting decode failure is logged and the file is framed again on its
// Write event.
//
// Arguments:
// - ctx: Cancels the watch.
// - opts: The run configuration; Input must be a directory.
//
// Returns:
// - ctx.Err() after cancellation, or an error if the watcher could not be
//   set up.
func Watch(ctx context.Context, opts Options) error {
	log := opts.logger()
	fr := opts.framerOrDefault()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(opts.Input); err != nil {
		return errors.Wrap(err, "watch input directory")
	}
	log.WithField("dir", opts.Input).Info("watching for new images")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !opts.accepts(event.Name) {
				continue
			}
			if err := fr.Frame(event.Name, opts.outputPath(event.Name), opts.Sizing); err != nil {
				log.WithFields(logrus.Fields{
					"image": event.Name,
					"error": err.Error(),
				}).Error("failed to frame image")
				continue
			}
			log.WithField("image", event.Name).Info("framed image")
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}
