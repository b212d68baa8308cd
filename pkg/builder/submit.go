package builder

import (
	"context"
	"errors"
	"sync"

	"github.com/M-Sanjay12o52o/formulate/pkg/formschema"
)

// FormCreator is the outbound edge of the builder: whoever can turn a
// validated draft into a persisted form. In production this is the API
// client.
type FormCreator interface {
	CreateForm(ctx context.Context, draft formschema.Draft) (*formschema.FormConfig, error)
}

// ErrSubmissionInFlight is returned when a submission is attempted
// while another is still outstanding.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// Submitter ships a draft to a FormCreator. It validates locally before
// any network traffic and allows at most one outstanding submission.
type Submitter struct {
	creator FormCreator

	mu   sync.Mutex
	busy bool
}

// NewSubmitter creates a Submitter over the given creator.
func NewSubmitter(creator FormCreator) *Submitter {
	return &Submitter{creator: creator}
}

// Submit validates the draft and, if it passes, sends it to the
// creator. Local validation failures are returned as formschema.Issues
// and never reach the network. On success the draft is cleared.
func (s *Submitter) Submit(ctx context.Context, draft *Draft) (*formschema.FormConfig, error) {
	payload := draft.ToSchema()
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	created, err := s.creator.CreateForm(ctx, payload)
	if err != nil {
		return nil, err
	}
	draft.Reset()
	return created, nil
}
