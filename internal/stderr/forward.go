package stderr

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Messages receives stderr lines captured from C libraries.
// Forward drains it into the log file.
var Messages = make(chan string, 100)

// Forward logs every captured line until ctx is done or lines is closed.
func Forward(ctx context.Context, lines <-chan string, logger log.FieldLogger) error {
	logger = logger.WithField("source", "stderr")
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			logger.Warn(line)
		}
	}
}
