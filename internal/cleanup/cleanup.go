package cleanup

import (
	"go.uber.org/zap"

	"github.com/autokomis-pl/autokomis-api/internal/upload"
)

// Dispatcher removes stored files off the request path. Failures are
// logged and dropped; a cleanup problem must never fail a request.
type Dispatcher struct {
	store *upload.Store
	log   *zap.SugaredLogger
	queue chan string
}

func NewDispatcher(store *upload.Store, log *zap.SugaredLogger) *Dispatcher {
	d := &Dispatcher{
		store: store,
		log:   log,
		queue: make(chan string, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for name := range d.queue {
		d.store.Remove(name)
	}
}

// RemoveFile queues a stored filename for deletion.
func (d *Dispatcher) RemoveFile(name string) {
	if name == "" {
		return
	}
	select {
	case d.queue <- name:
	default:
		d.log.Warnw("cleanup queue full, dropping file", "file", name)
	}
}

// RemoveURL queues the file behind an /uploads URL for deletion. URLs
// outside the store are ignored.
func (d *Dispatcher) RemoveURL(url string) {
	d.RemoveFile(d.store.NameFromURL(url))
}
