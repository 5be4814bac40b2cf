// Package bundler reads Bundler's lockfile, Gemfile and settings.
package bundler

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	sectionGit          = "GIT"
	sectionPath         = "PATH"
	sectionGem          = "GEM"
	sectionPlatforms    = "PLATFORMS"
	sectionDependencies = "DEPENDENCIES"
	sectionBundledWith  = "BUNDLED WITH"
)

var (
	specLine       = regexp.MustCompile(`^ {4}(\S+) \(([^)]+)\)$`)
	dependencyLine = regexp.MustCompile(`^ {6}(\S+)(?: \(([^)]+)\))?$`)
	optionLine     = regexp.MustCompile(`^ {2}([a-z_]+):(?: (.*))?$`)
	topLevelLine   = regexp.MustCompile(`^ {2}(\S+?)!?(?: \(([^)]+)\))?$`)
)

// LockfileParser implements ports.LockfileParser.
type LockfileParser struct{}

// NewLockfileParser creates a LockfileParser.
func NewLockfileParser() *LockfileParser {
	return &LockfileParser{}
}

// sourceBlock accumulates the options of one GIT, PATH or GEM section.
type sourceBlock struct {
	kind       string
	remotes    []string
	revision   string
	submodules bool
}

func (b *sourceBlock) source(lockDir string) domain.Source {
	switch b.kind {
	case sectionGit:
		var url string
		if len(b.remotes) > 0 {
			url = b.remotes[0]
		}
		return domain.GitSource{URL: url, Revision: b.revision, Submodules: b.submodules}
	case sectionPath:
		var path string
		if len(b.remotes) > 0 {
			path = b.remotes[0]
		}
		return domain.PathSource{Path: path}
	default:
		return domain.GemSource{
			Remotes: b.remotes,
			Caches:  []string{filepath.Join(lockDir, domain.VendorCacheDir)},
		}
	}
}

// Parse reads the lockfile at path.
func (p *LockfileParser) Parse(path string) (*domain.Lockfile, error) {
	// #nosec G304 -- the lockfile path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	lock, err := ParseLockfile(data, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	lock.Path = path
	return lock, nil
}

// ParseLockfile parses lockfile content. Gem sources look for vendored gems below lockDir.
func ParseLockfile(data []byte, lockDir string) (*domain.Lockfile, error) {
	lock := &domain.Lockfile{Fingerprint: Fingerprint(data)}

	var (
		section string
		block   *sourceBlock
		// specs of the current source block, whose Source is set once the block ends
		pending []domain.PackageSpec
	)

	flush := func() {
		if block == nil {
			return
		}
		src := block.source(lockDir)
		for i := range pending {
			pending[i].Source = src
		}
		lock.Specs = append(lock.Specs, pending...)
		block, pending = nil, nil
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if !strings.HasPrefix(line, " ") {
			flush()
			section = line
			switch section {
			case sectionGit, sectionPath, sectionGem:
				block = &sourceBlock{kind: section}
			}
			continue
		}

		var err error
		switch section {
		case sectionGit, sectionPath, sectionGem:
			pending, err = parseSourceLine(block, pending, line)
		case sectionPlatforms:
			lock.Platforms = append(lock.Platforms, domain.ParsePlatform(strings.TrimSpace(line)))
		case sectionDependencies:
			m := topLevelLine.FindStringSubmatch(line)
			if m == nil {
				err = zerr.New("malformed dependency line")
				break
			}
			lock.Dependencies = append(lock.Dependencies, m[1])
		case sectionBundledWith:
			lock.BundlerVersion = strings.TrimSpace(line)
		}
		if err != nil {
			err = zerr.Wrap(err, domain.ErrLockfileParse.Error())
			err = zerr.With(err, "line", lineNo)
			return nil, zerr.With(err, "content", strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockfileParse.Error())
	}
	flush()

	return lock, nil
}

func parseSourceLine(block *sourceBlock, pending []domain.PackageSpec, line string) ([]domain.PackageSpec, error) {
	if m := specLine.FindStringSubmatch(line); m != nil {
		version, platform, _ := strings.Cut(m[2], "-")
		return append(pending, domain.PackageSpec{
			Name:     m[1],
			Version:  version,
			Platform: domain.ParsePlatform(platform),
		}), nil
	}

	if m := dependencyLine.FindStringSubmatch(line); m != nil {
		if len(pending) == 0 {
			return nil, zerr.New("dependency listed before any spec")
		}
		last := &pending[len(pending)-1]
		last.Dependencies = append(last.Dependencies, domain.Dependency{Name: m[1], Requirement: m[2]})
		return pending, nil
	}

	if m := optionLine.FindStringSubmatch(line); m != nil {
		switch m[1] {
		case "remote":
			block.remotes = append(block.remotes, m[2])
		case "revision":
			block.revision = m[2]
		case "submodules":
			block.submodules = m[2] == "true"
		}
		return pending, nil
	}

	return nil, zerr.New(fmt.Sprintf("unexpected line in %s section", block.kind))
}

// Fingerprint returns the xxhash of the lockfile content in hex.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
