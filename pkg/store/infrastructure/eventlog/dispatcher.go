package eventlog

import (
	log "github.com/sirupsen/logrus"

	"github.com/Brixomart/Brixo-mart/pkg/store/domain/service"
)

// Dispatcher writes domain events to the structured log. The services
// only require the EventDispatcher contract, so tests swap in their own.
type Dispatcher struct {
	log log.FieldLogger
}

func NewDispatcher(logger log.FieldLogger) *Dispatcher {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Dispatcher{log: logger}
}

func (d *Dispatcher) Dispatch(event service.Event) error {
	d.log.WithFields(log.Fields{
		"event":   event.Type(),
		"payload": event,
	}).Info("domain event")
	return nil
}
