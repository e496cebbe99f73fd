package notifier

import (
	"context"

	"github.com/msilviu/taskpro/pkg/logging"
)

// LogNotifier writes messages to the application log instead of delivering
// them. Useful for local development without an SMTP relay.
type LogNotifier struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	n.log.Info(ctx, "email suppressed (log notifier)", "to", msg.To, "subject", msg.Subject)
	return nil
}
