package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"kitchenvision/internal/domain"
)

// Lead is one captured contact from a redesign request.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Action    string
	Country   string
	CreatedAt time.Time
}

// Sink receives captured leads. Callers treat capture as fire-and-forget:
// sink errors are logged, never surfaced to the requester.
type Sink interface {
	Capture(ctx context.Context, lead Lead) error
}

// New builds a Lead from the request contact with a fresh ID and timestamp.
func New(contact domain.Contact, action, country string) Lead {
	return Lead{
		ID:        uuid.New(),
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Action:    action,
		Country:   country,
		CreatedAt: time.Now().UTC(),
	}
}

// PGSink persists leads to Postgres.
type PGSink struct {
	pool *pgxpool.Pool
}

func NewPGSink(pool *pgxpool.Pool) *PGSink {
	return &PGSink{pool: pool}
}

func (s *PGSink) Capture(ctx context.Context, lead Lead) error {
	_, err := s.pool.Exec(ctx, `
INSERT INTO leads (id, name, email, phone, action, country, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING;
`, lead.ID, lead.Name, lead.Email, lead.Phone, lead.Action, lead.Country, lead.CreatedAt)
	if err != nil {
		return fmt.Errorf("leads: insert lead: %w", err)
	}
	return nil
}

// LogSink records leads to the structured log. It is the default sink when
// no DATABASE_URL is configured.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Capture(_ context.Context, lead Lead) error {
	s.log.Info().
		Str("lead_id", lead.ID.String()).
		Str("name", lead.Name).
		Str("email", lead.Email).
		Str("action", lead.Action).
		Str("country", lead.Country).
		Msg("lead captured")
	return nil
}

var (
	_ Sink = (*PGSink)(nil)
	_ Sink = (*LogSink)(nil)
)
