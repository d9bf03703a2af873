package ports

// Fingerprinter defines the interface for computing content fingerprints of
// analyzer inputs, used to detect stale snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// FileFingerprint returns a stable fingerprint of the file's content.
	FileFingerprint(path string) (string, error)
}
