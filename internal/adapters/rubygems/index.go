// Package rubygems queries the compact index of rubygems-compatible servers.
package rubygems

import (
	"bufio"
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// separator ends the header of a compact index info file.
const separator = "---"

// Index implements ports.RemoteIndex over the /info/<name> endpoint.
type Index struct {
	client      *http.Client
	credentials ports.CredentialStore
}

// NewIndex creates an Index. Each request is bounded by timeout.
func NewIndex(credentials ports.CredentialStore, timeout time.Duration) *Index {
	return &Index{
		client:      &http.Client{Timeout: timeout},
		credentials: credentials,
	}
}

// Variants lists the platforms version of name was published for, in index order.
// A remote without a compact index lists no variants, so callers download the locked platform as is.
func (i *Index) Variants(ctx context.Context, remote, name, version string) ([]domain.Platform, error) {
	endpoint := strings.TrimSuffix(remote, "/") + "/info/" + url.PathEscape(name)

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "remote", remote)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "remote", remote)
	}
	if u.User == nil {
		if user, password, ok := i.credentials.Lookup(u.Hostname()); ok {
			req.SetBasicAuth(user, password)
		}
	}

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "url", u.Redacted())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		err := zerr.With(zerr.Wrap(domain.ErrIndexRequestFailed, "unexpected status"), "url", u.Redacted())
		return nil, zerr.With(err, "status", resp.StatusCode)
	}

	var platforms []domain.Platform
	scanner := bufio.NewScanner(resp.Body)
	inBody := false
	for scanner.Scan() {
		line := scanner.Text()
		if !inBody {
			inBody = line == separator
			continue
		}
		token, _, _ := strings.Cut(line, " ")
		v, platform, _ := strings.Cut(token, "-")
		if v == version {
			platforms = append(platforms, domain.ParsePlatform(platform))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexRequestFailed.Error()), "url", u.Redacted())
	}

	if len(platforms) == 0 {
		err := zerr.With(zerr.Wrap(domain.ErrVersionNotPublished, "no variants listed"), "gem", name)
		return nil, zerr.With(err, "version", version)
	}
	return platforms, nil
}
