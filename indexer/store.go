package indexer

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store is the sqlite-backed projection of the event log. Free-text proposal
// descriptions stay on-ledger; the store keeps the structured fields the event
// lines carry.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS proposals (
	id          INTEGER PRIMARY KEY,
	creator     TEXT NOT NULL,
	deadline    INTEGER NOT NULL,
	stake       INTEGER NOT NULL,
	votes       INTEGER NOT NULL DEFAULT 0,
	closed      INTEGER NOT NULL DEFAULT 0,
	created_at  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS votes (
	proposal_id INTEGER NOT NULL,
	voter       TEXT NOT NULL,
	stake       INTEGER NOT NULL,
	cast_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS purchases (
	buyer     TEXT NOT NULL,
	paid      INTEGER NOT NULL,
	received  INTEGER NOT NULL,
	bought_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS winner (
	singleton   INTEGER PRIMARY KEY CHECK (singleton = 1),
	proposal_id INTEGER NOT NULL,
	votes       INTEGER NOT NULL,
	declared_at INTEGER NOT NULL
);
`

// OpenStore opens (and creates if needed) the sqlite projection at path.
// ":memory:" works for tests.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ProposalRow is the read model of one proposal.
type ProposalRow struct {
	ID        uint8  `json:"id"`
	Creator   string `json:"creator"`
	Deadline  int64  `json:"deadline"`
	Stake     uint64 `json:"stake"`
	Votes     uint64 `json:"votes"`
	Closed    bool   `json:"closed"`
	CreatedAt int64  `json:"createdAt"`
}

// WinnerRow is the read model of the singleton winner.
type WinnerRow struct {
	ProposalID uint8  `json:"proposalId"`
	Votes      uint64 `json:"votes"`
	DeclaredAt int64  `json:"declaredAt"`
}

// Apply folds one parsed event into the projection. ingestedAt stamps rows
// whose events carry no time of their own.
func (s *Store) Apply(ctx context.Context, ev Event, ingestedAt time.Time) error {
	switch ev.Kind {
	case KindProposalCreated:
		return s.applyProposalCreated(ctx, ev, ingestedAt)
	case KindVoteCast:
		return s.applyVoteCast(ctx, ev, ingestedAt)
	case KindProposalClosed:
		return s.applyProposalClosed(ctx, ev)
	case KindTokensPurchased:
		return s.applyTokensPurchased(ctx, ev, ingestedAt)
	case KindWinnerDeclared:
		return s.applyWinnerDeclared(ctx, ev)
	default:
		// registrations, closes and treasury admin leave no rows behind
		return nil
	}
}

func (s *Store) applyProposalCreated(ctx context.Context, ev Event, at time.Time) error {
	id, err := ev.ProposalID()
	if err != nil {
		return err
	}
	creator, err := ev.Field("by")
	if err != nil {
		return err
	}
	deadline, err := ev.Int64("dl")
	if err != nil {
		return err
	}
	stake, err := ev.Uint64("stake")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO proposals (id, creator, deadline, stake, votes, closed, created_at)
		 VALUES (?, ?, ?, ?, 0, 0, ?)
		 ON CONFLICT(id) DO NOTHING`,
		int64(id), creator, deadline, int64(stake), at.Unix())
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}
	return nil
}

func (s *Store) applyVoteCast(ctx context.Context, ev Event, at time.Time) error {
	id, err := ev.ProposalID()
	if err != nil {
		return err
	}
	voter, err := ev.Field("by")
	if err != nil {
		return err
	}
	tally, err := ev.Uint64("n")
	if err != nil {
		return err
	}
	stake, err := ev.Uint64("stake")
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO votes (proposal_id, voter, stake, cast_at) VALUES (?, ?, ?, ?)`,
		int64(id), voter, int64(stake), at.Unix()); err != nil {
		return fmt.Errorf("insert vote: %w", err)
	}
	// the event carries the authoritative running tally
	if _, err := s.db.ExecContext(ctx,
		`UPDATE proposals SET votes = ? WHERE id = ?`, int64(tally), int64(id)); err != nil {
		return fmt.Errorf("update tally: %w", err)
	}
	return nil
}

func (s *Store) applyProposalClosed(ctx context.Context, ev Event) error {
	id, err := ev.ProposalID()
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE proposals SET closed = 1 WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("close proposal: %w", err)
	}
	return nil
}

func (s *Store) applyTokensPurchased(ctx context.Context, ev Event, at time.Time) error {
	buyer, err := ev.Field("by")
	if err != nil {
		return err
	}
	paid, err := ev.Uint64("paid")
	if err != nil {
		return err
	}
	received, err := ev.Uint64("recv")
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO purchases (buyer, paid, received, bought_at) VALUES (?, ?, ?, ?)`,
		buyer, int64(paid), int64(received), at.Unix()); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

func (s *Store) applyWinnerDeclared(ctx context.Context, ev Event) error {
	id, err := ev.ProposalID()
	if err != nil {
		return err
	}
	votes, err := ev.Uint64("votes")
	if err != nil {
		return err
	}
	declaredAt, err := ev.Int64("at")
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO winner (singleton, proposal_id, votes, declared_at)
		 VALUES (1, ?, ?, ?)
		 ON CONFLICT(singleton) DO UPDATE SET
		   proposal_id = excluded.proposal_id,
		   votes = excluded.votes,
		   declared_at = excluded.declared_at`,
		int64(id), int64(votes), declaredAt)
	if err != nil {
		return fmt.Errorf("upsert winner: %w", err)
	}
	return nil
}

// ListProposals returns every indexed proposal in id order.
func (s *Store) ListProposals(ctx context.Context) ([]ProposalRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, creator, deadline, stake, votes, closed, created_at
		 FROM proposals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := make([]ProposalRow, 0)
	for rows.Next() {
		row, err := scanProposal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	return out, nil
}

// GetProposal returns one proposal, with found=false when the id was never indexed.
func (s *Store) GetProposal(ctx context.Context, id uint8) (ProposalRow, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, creator, deadline, stake, votes, closed, created_at
		 FROM proposals WHERE id = ?`, int64(id))
	p, err := scanProposal(row.Scan)
	if err == sql.ErrNoRows {
		return ProposalRow{}, false, nil
	}
	if err != nil {
		return ProposalRow{}, false, err
	}
	return p, true, nil
}

func scanProposal(scan func(...any) error) (ProposalRow, error) {
	var p ProposalRow
	var id, stake, votes, closed int64
	if err := scan(&id, &p.Creator, &p.Deadline, &stake, &votes, &closed, &p.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return ProposalRow{}, err
		}
		return ProposalRow{}, fmt.Errorf("scan proposal: %w", err)
	}
	p.ID = uint8(id)
	p.Stake = uint64(stake)
	p.Votes = uint64(votes)
	p.Closed = closed != 0
	return p, nil
}

// GetWinner returns the winner row, with found=false before any declaration.
func (s *Store) GetWinner(ctx context.Context) (WinnerRow, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT proposal_id, votes, declared_at FROM winner WHERE singleton = 1`)
	var w WinnerRow
	var id, votes int64
	if err := row.Scan(&id, &votes, &w.DeclaredAt); err != nil {
		if err == sql.ErrNoRows {
			return WinnerRow{}, false, nil
		}
		return WinnerRow{}, false, fmt.Errorf("get winner: %w", err)
	}
	w.ProposalID = uint8(id)
	w.Votes = uint64(votes)
	return w, true, nil
}
