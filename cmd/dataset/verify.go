package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ozicme/internal/infra/dataset"

	"github.com/pkg/errors"
)

const verifyTimeout = 15 * time.Second

// runVerify fetches a dataset URL and checks it parses as a JSON array
// of records. It prints the record count on success.
func runVerify(ctx context.Context, datasetURL string) error {
	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, datasetURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to fetch dataset")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("dataset url returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read dataset body")
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return errors.Wrap(err, "dataset is not a JSON array")
	}

	// Run the records through normalization so structural problems
	// surface here rather than at server startup.
	raws := make([]dataset.RawRecord, 0, len(rows))
	for _, row := range rows {
		var raw dataset.RawRecord
		if err := json.Unmarshal(row, &raw); err != nil {
			raws = append(raws, nil)
			continue
		}
		raws = append(raws, raw)
	}
	records := dataset.NormalizeAll(raws)

	fmt.Printf("OK: %d records\n", len(records))

	return nil
}
