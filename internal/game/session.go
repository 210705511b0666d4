package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Investle/internal/catalog"
	"Investle/internal/daily"
	"Investle/internal/model"

	"github.com/google/uuid"
)

// MaxGuesses is the guess budget for a session.
const MaxGuesses = 8

// State is the session lifecycle state. Won and Exhausted are terminal.
type State string

const (
	StateContinuing State = "CONTINUING"
	StateWon        State = "WON"
	StateExhausted  State = "EXHAUSTED"
)

// Rejection reasons. All are recoverable user-input conditions returned to
// the caller; none of them mutates the session.
var (
	ErrInvalidInput    = errors.New("guess input is empty")
	ErrUnknownEntity   = errors.New("no catalog entity matches the input")
	ErrDuplicateGuess  = errors.New("entity was already guessed this session")
	ErrBudgetExhausted = errors.New("all guesses have been used")
	ErrSessionOver     = errors.New("session is already won")
)

// Session owns one player's game: the fixed secret, the guesses so far, and
// the lifecycle state. Not safe for concurrent use; give each player their
// own session.
type Session struct {
	id      uuid.UUID
	catalog *catalog.Catalog
	secret  model.Entity
	guesses []model.Entity
	state   State
}

// NewSession fixes the secret for the calendar day of now and starts a
// session against the given catalog.
func NewSession(cat *catalog.Catalog, now time.Time) (*Session, error) {
	secret, err := daily.SelectSecret(cat, now)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:      uuid.New(),
		catalog: cat,
		secret:  secret,
		state:   StateContinuing,
	}, nil
}

// GuessResult reports one accepted guess.
type GuessResult struct {
	Guess      model.Entity
	Comparison model.Comparison
	Won        bool
	State      State
}

// Submit runs the guess state machine for one raw input. Guards run in
// order: empty input, resolution, duplicate, budget. A rejection returns one
// of the sentinel errors above and leaves the session unchanged. On
// acceptance the guess is recorded, evaluated against the secret, and the
// session transitions to Won, Exhausted, or stays Continuing.
func (s *Session) Submit(raw string) (*GuessResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrInvalidInput
	}

	entity, ok := s.catalog.Resolve(raw)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, strings.TrimSpace(raw))
	}

	for _, g := range s.guesses {
		if strings.EqualFold(g.Ticker, entity.Ticker) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGuess, entity.Ticker)
		}
	}

	// The front end is expected to stop prompting once the session is
	// terminal; these guards hold regardless.
	if s.state == StateWon {
		return nil, ErrSessionOver
	}
	if s.state == StateExhausted || len(s.guesses) >= MaxGuesses {
		return nil, ErrBudgetExhausted
	}

	s.guesses = append(s.guesses, entity)
	comparison := Evaluate(entity, s.secret)

	won := strings.EqualFold(entity.Ticker, s.secret.Ticker)
	switch {
	case won:
		s.state = StateWon
	case len(s.guesses) == MaxGuesses:
		s.state = StateExhausted
	}

	return &GuessResult{
		Guess:      entity,
		Comparison: comparison,
		Won:        won,
		State:      s.state,
	}, nil
}

// ID returns the session identifier, used for log correlation.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Over reports whether the session has reached a terminal state.
func (s *Session) Over() bool { return s.state != StateContinuing }

// Guesses returns a copy of the accepted guesses in submission order.
func (s *Session) Guesses() []model.Entity {
	out := make([]model.Entity, len(s.guesses))
	copy(out, s.guesses)
	return out
}

// GuessesRemaining returns how many guesses are left in the budget.
func (s *Session) GuessesRemaining() int { return MaxGuesses - len(s.guesses) }

// Secret reveals the hidden entity, but only once the session is terminal.
func (s *Session) Secret() (model.Entity, bool) {
	if !s.Over() {
		return model.Entity{}, false
	}
	return s.secret, true
}
