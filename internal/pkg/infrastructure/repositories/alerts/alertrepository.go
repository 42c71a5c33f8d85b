package alerts

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/diwise/alert-analysis/pkg/types"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out alertrepository_mock.go . AlertRepository

// AlertRepository holds one loaded alert dataset, immutable for the session.
// GetAll returns the alerts in dataset order; the returned slice must be
// treated as read only.
type AlertRepository interface {
	GetAll(ctx context.Context) ([]types.Alert, error)
	GetByID(ctx context.Context, alertID string) (types.Alert, error)
}

var ErrAlertNotFound = fmt.Errorf("alert not found")

type repository struct {
	log        zerolog.Logger
	alerts     []types.Alert
	alertsByID map[string]int
}

// New loads an alert dataset from a file on disk. A missing file is reported
// as an actionable configuration problem rather than an opaque failure,
// since it usually means the ingestion step has not been run yet.
func New(logger zerolog.Logger, filePath string) (AlertRepository, error) {
	alertsFile, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("no alert dataset found at %s, run the ingestion step first: %w", filePath, err)
	}

	defer alertsFile.Close()

	return NewFromReader(logger, alertsFile)
}

// NewFromReader reads a ; separated dataset with the columns
// id;title;source;tags;services;infra_components;data_timestamp;text
// into memory. Duplicate ids and rows with the wrong number of columns are
// load failures.
func NewFromReader(logger zerolog.Logger, alertsFile io.Reader) (AlertRepository, error) {
	r := csv.NewReader(alertsFile)
	r.Comma = ';'

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv data from file: %s", err.Error())
	}

	repo := &repository{
		log:        logger,
		alerts:     []types.Alert{},
		alertsByID: map[string]int{},
	}

	const expectedColumnCount = 8

	for idx, row := range rows {
		if idx == 0 {
			// skip the csv header
			continue
		}

		if len(row) != expectedColumnCount {
			return nil, fmt.Errorf("expected %d columns but found %d on line %d in alert dataset", expectedColumnCount, len(row), idx+1)
		}

		alert := types.Alert{
			ID:              row[0],
			Title:           row[1],
			Source:          row[2],
			Tags:            row[3],
			Services:        row[4],
			InfraComponents: row[5],
			DataTimestamp:   row[6],
			Text:            row[7],
		}

		if _, ok := repo.alertsByID[alert.ID]; ok {
			return nil, fmt.Errorf("duplicate alert id %s found on line %d in alert dataset", alert.ID, idx+1)
		}

		repo.alertsByID[alert.ID] = len(repo.alerts)
		repo.alerts = append(repo.alerts, alert)
	}

	logger.Info().Msgf("loaded %d alerts from dataset", len(repo.alerts))

	return repo, nil
}

func (r *repository) GetAll(ctx context.Context) ([]types.Alert, error) {
	return r.alerts, nil
}

func (r *repository) GetByID(ctx context.Context, alertID string) (types.Alert, error) {
	idx, ok := r.alertsByID[alertID]
	if !ok {
		return types.Alert{}, ErrAlertNotFound
	}

	return r.alerts[idx], nil
}
