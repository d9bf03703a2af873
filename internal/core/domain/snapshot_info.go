package domain

import "time"

// SnapshotInfo carries the metadata stored alongside a persisted graph.
type SnapshotInfo struct {
	// ReportFingerprint is the xxhash of the dependency report the graph was
	// built from. A snapshot whose fingerprint no longer matches the report
	// on disk is stale and must be rebuilt.
	ReportFingerprint string    `json:"report_fingerprint,omitzero"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
	ClassCount        int       `json:"class_count,omitzero"`
}
