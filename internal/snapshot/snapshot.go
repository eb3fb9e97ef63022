// Package snapshot builds the JSON payloads published to blob storage for
// static consumers of the job list and the per-post details map.
package snapshot

import (
	"strings"
	"time"

	"github.com/sarkarihub/govjobs/internal/jobs"
)

// IST is the timezone snapshots are stamped in.
var IST = time.FixedZone("IST", 5*3600+1800)

// JobsPayload is the published job-list snapshot.
type JobsPayload struct {
	UpdatedAt string        `json:"updated_at"`
	Count     int           `json:"count"`
	Jobs      []jobs.Record `json:"jobs"`
}

// DetailsPayload is the published details-map snapshot, keyed by post URL.
type DetailsPayload struct {
	UpdatedAt string                  `json:"updated_at"`
	Count     int                     `json:"count"`
	Details   map[string]jobs.Details `json:"details"`
}

// Timestamp renders now as a lowercase IST wall-clock stamp, e.g.
// "2026-08-31 03:04pm ist".
func Timestamp(now time.Time) string {
	return strings.ToLower(now.In(IST).Format("2006-01-02 03:04PM")) + " ist"
}

// BuildJobsPayload wraps records for publication.
func BuildJobsPayload(records []jobs.Record, now time.Time) JobsPayload {
	if records == nil {
		records = []jobs.Record{}
	}
	return JobsPayload{
		UpdatedAt: Timestamp(now),
		Count:     len(records),
		Jobs:      records,
	}
}

// BuildDetailsPayload wraps a details map for publication.
func BuildDetailsPayload(details map[string]jobs.Details, now time.Time) DetailsPayload {
	if details == nil {
		details = map[string]jobs.Details{}
	}
	return DetailsPayload{
		UpdatedAt: Timestamp(now),
		Count:     len(details),
		Details:   details,
	}
}
