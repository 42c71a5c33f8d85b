package alertanalysis

import (
	"context"
	"io"
	"time"

	"github.com/diwise/alert-analysis/internal/pkg/infrastructure/repositories/alerts"
	"github.com/diwise/alert-analysis/pkg/types"
	"gopkg.in/yaml.v2"
)

// DefaultNoiseSource is the alert origin that is excluded from grouping and
// display unless the configuration says otherwise.
const DefaultNoiseSource = "Doctor Droid"

// MalformedTimestampPolicy decides what happens when a data_timestamp column
// value does not conform to the fixed dataset format during time window
// filtering. The original behavior is to fail the whole filter call.
type MalformedTimestampPolicy string

const (
	MalformedTimestampFail MalformedTimestampPolicy = "fail"
	MalformedTimestampSkip MalformedTimestampPolicy = "skip"
)

type Configuration struct {
	NoiseSource         string                   `yaml:"noiseSource"`
	MalformedTimestamps MalformedTimestampPolicy `yaml:"malformedTimestamps"`
}

func NewConfiguration(config io.ReadCloser) (*Configuration, error) {
	defer config.Close()

	b, err := io.ReadAll(config)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfiguration()
	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		NoiseSource:         DefaultNoiseSource,
		MalformedTimestamps: MalformedTimestampFail,
	}
}

//go:generate moq -rm -out alertanalysis_mock.go . AlertService

// AlertService is the read only analysis core. Groups filters the loaded
// dataset by the requested time window, relative to the wall clock at call
// time, and clusters the result by component/service identity. Details
// produces the display record for a single alert. Both produce fresh
// structures on every call and never mutate the underlying dataset.
type AlertService interface {
	Groups(ctx context.Context, window Window) (types.GroupedAlerts, error)
	Details(ctx context.Context, alertID string) (types.AlertDetails, error)

	Config() *Configuration
}

type service struct {
	storage alerts.AlertRepository
	config  *Configuration

	now func() time.Time
}

func New(storage alerts.AlertRepository, config *Configuration) AlertService {
	return &service{
		storage: storage,
		config:  config,
		now:     time.Now,
	}
}

func (s *service) Config() *Configuration {
	return s.config
}

func (s *service) Groups(ctx context.Context, window Window) (types.GroupedAlerts, error) {
	all, err := s.storage.GetAll(ctx)
	if err != nil {
		return types.GroupedAlerts{}, err
	}

	filtered, err := filterByWindow(all, window, s.now(), s.config.MalformedTimestamps)
	if err != nil {
		return types.GroupedAlerts{}, err
	}

	return groupAlerts(filtered, s.config.NoiseSource), nil
}

func (s *service) Details(ctx context.Context, alertID string) (types.AlertDetails, error) {
	alert, err := s.storage.GetByID(ctx, alertID)
	if err != nil {
		return types.AlertDetails{}, err
	}

	return formatDetails(alert), nil
}
