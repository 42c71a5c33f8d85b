package alerts

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestLoadDataset(t *testing.T) {
	is := is.New(t)

	repo, err := NewFromReader(zerolog.Nop(), strings.NewReader(csvMock))
	is.NoErr(err)

	all, err := repo.GetAll(context.Background())
	is.NoErr(err)

	is.Equal(len(all), 3)
	is.Equal(all[0].ID, "alert-001")
	is.Equal(all[0].Title, "High CPU load")
	is.Equal(all[0].InfraComponents, "api, worker")
	is.Equal(all[0].DataTimestamp, "2023-04-11 08:15:30.000000+0000")
	is.Equal(all[0].Text, `{"data": {"event": {"data_timestamp": 1700000000}}}`)
	is.Equal(all[1].Services, "api")
	is.Equal(all[2].Source, "Doctor Droid")
}

func TestGetByID(t *testing.T) {
	is := is.New(t)

	repo, err := NewFromReader(zerolog.Nop(), strings.NewReader(csvMock))
	is.NoErr(err)

	alert, err := repo.GetByID(context.Background(), "alert-002")
	is.NoErr(err)
	is.Equal(alert.Title, "Slow responses")
}

func TestGetByUnknownIDReturnsNotFound(t *testing.T) {
	is := is.New(t)

	repo, err := NewFromReader(zerolog.Nop(), strings.NewReader(csvMock))
	is.NoErr(err)

	_, err = repo.GetByID(context.Background(), "nosuchalert")
	is.True(errors.Is(err, ErrAlertNotFound))
}

func TestDuplicateAlertIDFailsTheLoad(t *testing.T) {
	is := is.New(t)

	duplicates := csvHeader + "\n" +
		"alert-001;one;src;;;;2023-04-11 08:15:30.000000+0000;\n" +
		"alert-001;two;src;;;;2023-04-11 08:15:30.000000+0000;"

	_, err := NewFromReader(zerolog.Nop(), strings.NewReader(duplicates))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "duplicate alert id alert-001"))
}

func TestWrongColumnCountFailsTheLoad(t *testing.T) {
	is := is.New(t)

	// csv.Reader itself rejects rows with a deviating field count
	truncated := csvHeader + "\nalert-001;only;three"

	_, err := NewFromReader(zerolog.Nop(), strings.NewReader(truncated))
	is.True(err != nil)
}

func TestMissingDatasetFileIsActionable(t *testing.T) {
	is := is.New(t)

	_, err := New(zerolog.Nop(), "/no/such/path/alerts.csv")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "run the ingestion step first"))
	is.True(errors.Is(err, os.ErrNotExist))
}

const csvHeader string = "id;title;source;tags;services;infra_components;data_timestamp;text"

const csvMock string = csvHeader + `
alert-001;High CPU load;Datadog;"{'env': 'prod'}";;"api, worker";2023-04-11 08:15:30.000000+0000;"{""data"": {""event"": {""data_timestamp"": 1700000000}}}"
alert-002;Slow responses;Grafana;;api;;2023-04-11 09:20:00.000000+0000;"{""data"": {""event"": {""data_timestamp"": 1699996400}}}"
alert-003;Noisy self-report;Doctor Droid;;;;2023-04-10 23:59:59.000000+0000;not json`
