// Package download fetches remote gem artifacts into the artifact cache.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/gemnix/internal/ui/output"
	"go.trai.ch/gemnix/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Downloader implements ports.Downloader over HTTP.
type Downloader struct {
	cache       ports.ArtifactCache
	credentials ports.CredentialStore
	client      *http.Client
	diagnostics io.Writer
	group       singleflight.Group
}

// NewDownloader creates a Downloader. Each request is bounded by timeout.
func NewDownloader(cache ports.ArtifactCache, credentials ports.CredentialStore, timeout time.Duration) *Downloader {
	return &Downloader{
		cache:       cache,
		credentials: credentials,
		client:      &http.Client{Timeout: timeout},
		diagnostics: os.Stderr,
	}
}

// SetDiagnostics redirects the authentication diagnostics, which go to stderr by default.
func (d *Downloader) SetDiagnostics(w io.Writer) {
	d.diagnostics = w
}

// Download returns the cached artifact for rawURL, fetching it first when it is missing.
// Concurrent calls for one URL share a single request.
func (d *Downloader) Download(ctx context.Context, rawURL string) (string, error) {
	if d.cache.Has(rawURL) {
		return d.cache.Path(rawURL), nil
	}

	path, err, _ := d.group.Do(rawURL, func() (any, error) {
		if d.cache.Has(rawURL) {
			return d.cache.Path(rawURL), nil
		}
		return d.fetch(ctx, rawURL)
	})
	if err != nil {
		return "", err
	}
	return path.(string), nil
}

func (d *Downloader) fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", rawURL)
	}
	if u.User == nil {
		if user, password, ok := d.credentials.Lookup(u.Hostname()); ok {
			req.SetBasicAuth(user, password)
		}
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDownloadFailed.Error()), "url", u.Redacted())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		d.reportAuthentication(u.Hostname())
		err := zerr.Wrap(domain.ErrAuthentication, "remote rejected the request")
		err = zerr.With(err, "host", u.Hostname())
		return "", zerr.With(err, "status", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		err := zerr.Wrap(domain.ErrDownloadFailed, "unexpected status")
		err = zerr.With(err, "url", u.Redacted())
		return "", zerr.With(err, "status", resp.StatusCode)
	}

	return d.cache.Put(rawURL, resp.Body)
}

func (d *Downloader) reportAuthentication(host string) {
	out := output.New(d.diagnostics)
	msg := fmt.Sprintf("Authentication is required for %s.\n"+
		"Please supply credentials for this source. You can do this by running:\n"+
		"  bundle config set --global %s username:password", host, host)
	_, _ = fmt.Fprintln(d.diagnostics, output.Paint(out, msg, style.Red))
}
