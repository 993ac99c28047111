package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"kickboard.kickmetrics.org/internal/logging"
	"kickboard.kickmetrics.org/internal/models"
)

// Well-known dataset file names.
const (
	PlayersFile = "players.csv"
	MetricsFile = "regression_metrics.csv"

	liquidityFile = "manager_liquidity.csv"
)

// LiquidityHint is appended to the source-missing error when every
// liquidity candidate file is absent. The dataset is produced offline, so
// the fix is on that side, not in this service.
const LiquidityHint = "no liquidity dataset found; run the offline liquidity export to generate manager_liquidity.csv"

// Manager owns dataset retrieval for all views. Every Load call is one
// full fetch+parse cycle: nothing is cached between calls, so each view
// activation sees the files as they are on disk (or at the remote) right
// now.
type Manager struct {
	source   Source
	leagueID string
	logger   *slog.Logger
}

// NewManager creates a Manager reading from the given source. leagueID
// may be empty; it only widens the liquidity filename probe list.
func NewManager(source Source, leagueID string, logger *slog.Logger) *Manager {
	return &Manager{
		source:   source,
		leagueID: leagueID,
		logger:   logger,
	}
}

// LoadPlayers fetches and parses the player dataset.
func (m *Manager) LoadPlayers(ctx context.Context) ([]models.Record, error) {
	return m.loadTable(ctx, PlayersFile)
}

// LoadMetrics fetches the regression metrics dataset and returns its
// single data row. A metrics file with no data row counts as malformed;
// callers are expected to fall back to built-in coefficients on any error
// here.
func (m *Manager) LoadMetrics(ctx context.Context) (models.Record, error) {
	records, err := m.loadTable(ctx, MetricsFile)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s has no data row", ErrMalformed, MetricsFile)
	}
	return records[0], nil
}

// LiquidityCandidates returns the ordered list of filenames probed for
// the manager liquidity dataset: the generic name first, then
// league-suffixed variants when a league id is configured.
func (m *Manager) LiquidityCandidates() []string {
	candidates := []string{liquidityFile}
	if m.leagueID != "" {
		candidates = append(candidates,
			fmt.Sprintf("manager_liquidity_%s.csv", m.leagueID),
			fmt.Sprintf("liquidity_%s.csv", m.leagueID),
		)
	}
	return candidates
}

// LoadLiquidity probes the candidate filenames in order and parses the
// first one that fetches successfully, returning the records and the name
// that won. When every candidate is missing the error carries
// LiquidityHint. A parse failure in a candidate that did fetch is a real
// error, not a reason to keep probing.
func (m *Manager) LoadLiquidity(ctx context.Context) ([]models.Record, string, error) {
	for _, name := range m.LiquidityCandidates() {
		records, err := m.loadTable(ctx, name)
		if err == nil {
			return records, name, nil
		}
		if errors.Is(err, ErrSourceMissing) && ctx.Err() == nil {
			continue
		}
		return nil, name, err
	}
	return nil, "", fmt.Errorf("%w: %s", ErrSourceMissing, LiquidityHint)
}

func (m *Manager) loadTable(ctx context.Context, name string) ([]models.Record, error) {
	data, err := m.source.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	records, err := ParseTable(data)
	if err != nil {
		logging.LogError(m.logger, "failed to parse dataset", err,
			slog.String("dataset", name))
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	logging.LogOperation(m.logger, "dataset loaded",
		slog.String("dataset", name),
		slog.Int("records", len(records)))
	return records, nil
}
