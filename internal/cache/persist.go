package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// cacheFile is the on-disk shape. Older snapshots were a bare record array;
// readCacheFile accepts both.
type cacheFile struct {
	UpdatedAt string        `json:"updated_at"`
	Jobs      []jobs.Record `json:"jobs"`
}

func writeCacheFile(path string, records []jobs.Record) error {
	payload := cacheFile{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Jobs:      records,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

func readCacheFile(path string) ([]jobs.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	var payload cacheFile
	if err := json.Unmarshal(data, &payload); err == nil {
		return payload.Jobs, nil
	}
	var records []jobs.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode cache: %w", err)
	}
	return records, nil
}
