package ports

import "io"

// ArtifactCache stores downloaded artifacts keyed by their source URL.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactCache interface {
	// Path returns where the artifact for url is stored, whether or not it exists yet.
	Path(url string) string

	// Has reports whether a non-empty artifact for url is stored.
	Has(url string) bool

	// Put atomically stores the content of r for url and returns its path.
	Put(url string, r io.Reader) (string, error)
}
