package mail

import (
	"context"

	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

// LogSink stands in for the SMTP relay when no mail server is configured.
// Messages are logged instead of sent, which keeps the contact form usable
// in local development.
type LogSink struct {
	logger *logging.Logger
}

func NewLogSink(logger *logging.Logger) *LogSink {
	if logger == nil {
		logger = logging.Default()
	}

	return &LogSink{logger: logger}
}

func (s *LogSink) SendContactMessage(ctx context.Context, msg usecase.ContactMessage) error {
	s.logger.InfoContext(ctx, "contact message received (mail relay not configured)",
		"sender", msg.Email,
		"subject", msg.Subject,
	)

	return nil
}
