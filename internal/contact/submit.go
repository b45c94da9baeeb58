package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iburimskiy/portfolio-web/internal/config"
)

const (
	SuccessMessage = "Message sent successfully! I'll get back to you soon."
	FailureMessage = "Failed to send message. Please try again."
)

// Submitter stands in for a transport: it validates and then waits Delay.
type Submitter struct {
	Delay time.Duration
}

func NewSubmitter() *Submitter {
	return &Submitter{Delay: config.SubmitDelayMillis * time.Millisecond}
}

// Submit validates f and simulates sending it. Validation failures wrap
// ErrInvalid together with every *FieldError.
func (s *Submitter) Submit(ctx context.Context, f Form) error {
	if errs := f.Validate(); len(errs) > 0 {
		joined := make([]error, len(errs))
		for i, e := range errs {
			joined[i] = e
		}
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(joined...))
	}

	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("submit: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
