package notification

import (
	"context"
	"log/slog"
)

// LogNotifier writes emails to the log instead of sending them.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger.With("component", "LogNotifier")}
}

func (n *LogNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	n.logger.InfoContext(ctx, "email",
		"to", recipient,
		"subject", subject,
		"body", body,
	)
	return nil
}
