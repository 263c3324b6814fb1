package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
)

// ContactMessage is a fully-formed message from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (m ContactMessage) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("name is required")
	}
	email := strings.TrimSpace(m.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("subject is required")
	}
	if strings.TrimSpace(m.Body) == "" {
		return fmt.Errorf("message body is required")
	}

	return nil
}

// Mailer relays a contact message to the editorial inbox.
type Mailer interface {
	SendContactMessage(ctx context.Context, msg ContactMessage) error
}

type ContactService struct {
	mailer Mailer
	logger *logging.Logger
}

func NewContactService(mailer Mailer, logger *logging.Logger) *ContactService {
	if logger == nil {
		logger = logging.Default()
	}

	return &ContactService{
		mailer: mailer,
		logger: logger,
	}
}

func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ContactService.Submit")
	defer span.End()

	if err := msg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.mailer.SendContactMessage(ctx, msg); err != nil {
		s.logger.ErrorContext(ctx, "contact message relay failed",
			"sender", msg.Email,
			"error", err,
		)
		return fmt.Errorf("%w: contact relay failed", ErrDependencyUnavailable)
	}

	s.logger.InfoContext(ctx, "contact message relayed", "sender", msg.Email)

	return nil
}
