// Package mail relays contact form submissions to the editorial inbox
// over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/goalzone-ng/goalzone-api/internal/platform/logging"
	"github.com/goalzone-ng/goalzone-api/internal/platform/resilience"
	"github.com/goalzone-ng/goalzone-api/internal/usecase"
)

type SMTPRelayConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	From           string
	To             string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type SMTPRelay struct {
	addr           string
	host           string
	auth           smtp.Auth
	from           string
	to             string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool

	// send is swapped in tests to avoid dialing a real server.
	send func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPRelay(cfg SMTPRelayConfig) (*SMTPRelay, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, crerr.New("smtp host is required")
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if strings.TrimSpace(cfg.From) == "" || strings.TrimSpace(cfg.To) == "" {
		return nil, crerr.New("smtp from and to addresses are required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &SMTPRelay{
		addr:           net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port)),
		host:           cfg.Host,
		auth:           auth,
		from:           cfg.From,
		to:             cfg.To,
		timeout:        cfg.Timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		send:           smtp.SendMail,
	}, nil
}

func (r *SMTPRelay) SendContactMessage(ctx context.Context, msg usecase.ContactMessage) error {
	if r.circuitEnabled {
		if err := r.breaker.Allow(); err != nil {
			return fmt.Errorf("%w: mail circuit open", usecase.ErrDependencyUnavailable)
		}
	}

	encoded := r.encodeMessage(msg)
	errCh := make(chan error, 1)
	go func() {
		errCh <- r.send(r.addr, r.auth, r.from, []string{r.to}, encoded)
	}()

	var err error
	select {
	case err = <-errCh:
	case <-time.After(r.timeout):
		err = crerr.New("smtp send timed out")
	case <-ctx.Done():
		err = ctx.Err()
	}

	if err != nil {
		if r.circuitEnabled {
			r.breaker.RecordFailure()
		}
		r.logger.WarnContext(ctx, "contact mail relay failed", "error", err.Error())
		return fmt.Errorf("%w: send contact mail: %v", usecase.ErrDependencyUnavailable, err)
	}
	if r.circuitEnabled {
		r.breaker.RecordSuccess()
	}

	return nil
}

func (r *SMTPRelay) encodeMessage(msg usecase.ContactMessage) []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("From: ")
	_, _ = buf.WriteString(r.from)
	_, _ = buf.WriteString("\r\nTo: ")
	_, _ = buf.WriteString(r.to)
	_, _ = buf.WriteString("\r\nReply-To: ")
	_, _ = buf.WriteString(sanitizeHeader(msg.Email))
	_, _ = buf.WriteString("\r\nSubject: [contact] ")
	_, _ = buf.WriteString(sanitizeHeader(msg.Subject))
	_, _ = buf.WriteString("\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	_, _ = buf.WriteString("Name: ")
	_, _ = buf.WriteString(msg.Name)
	_, _ = buf.WriteString("\nEmail: ")
	_, _ = buf.WriteString(msg.Email)
	_, _ = buf.WriteString("\n\n")
	_, _ = buf.WriteString(msg.Body)
	_, _ = buf.WriteString("\n")

	out := make([]byte, buf.Len())
	copy(out, buf.B)

	return out
}

// sanitizeHeader strips CR and LF so user input cannot inject extra headers.
func sanitizeHeader(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	v = strings.ReplaceAll(v, "\n", " ")

	return strings.TrimSpace(v)
}
