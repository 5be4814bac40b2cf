// Package app implements the application layer for gemnix.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/gemnix/internal/engine/attributes"
	"go.trai.ch/gemnix/internal/engine/converter"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Quieter is implemented by outputs whose informational messages can be suppressed.
type Quieter interface {
	SetQuiet(quiet bool)
}

// ProjectScoped is implemented by adapters whose settings live next to the Gemfile of a run.
type ProjectScoped interface {
	SetProjectDir(dir string)
}

// jsonSwitcher is implemented by loggers that can emit JSON.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	config    domain.Config
	lockfiles ports.LockfileParser
	manifests ports.ManifestLoader
	gemsets   ports.GemsetLoader
	writer    ports.GemsetWriter
	converter *converter.Converter
	logger    ports.Logger
	outputs   []Quieter
	projects  []ProjectScoped
}

// New creates a new App instance.
func New(
	cfg domain.Config,
	lockfiles ports.LockfileParser,
	manifests ports.ManifestLoader,
	gemsets ports.GemsetLoader,
	writer ports.GemsetWriter,
	conv *converter.Converter,
	log ports.Logger,
) *App {
	return &App{
		config:    cfg,
		lockfiles: lockfiles,
		manifests: manifests,
		gemsets:   gemsets,
		writer:    writer,
		converter: conv,
		logger:    log,
	}
}

// WithOutputs registers outputs that follow the quiet setting of a run.
func (a *App) WithOutputs(outputs ...Quieter) *App {
	a.outputs = append(a.outputs, outputs...)
	return a
}

// WithProjectScoped registers adapters that follow the Gemfile directory of a run.
func (a *App) WithProjectScoped(scoped ...ProjectScoped) *App {
	a.projects = append(a.projects, scoped...)
	return a
}

// Options carries command line overrides. Zero values leave the configured setting untouched.
type Options struct {
	Gemfile   string
	Lockfile  string
	Gemset    string
	Platform  string
	Platforms []string
	Jobs      int
	Quiet     bool
	LogJSON   bool
}

// Apply returns cfg with the set options laid over it.
func (o Options) Apply(cfg domain.Config) domain.Config {
	if o.Gemfile != "" {
		cfg.Gemfile = o.Gemfile
	}
	if o.Lockfile != "" {
		cfg.Lockfile = o.Lockfile
	}
	if o.Gemset != "" {
		cfg.Gemset = o.Gemset
	}
	if o.Platform != "" {
		cfg.Platform = o.Platform
		cfg.Platforms = nil
	}
	if len(o.Platforms) > 0 {
		cfg.Platforms = o.Platforms
	}
	if o.Jobs != 0 {
		cfg.Jobs = o.Jobs
	}
	cfg.Quiet = cfg.Quiet || o.Quiet
	cfg.LogJSON = cfg.LogJSON || o.LogJSON
	return cfg
}

// Convert writes one gemset per target platform from the configured lockfile.
func (a *App) Convert(ctx context.Context, opts Options) error {
	cfg := opts.Apply(a.config)
	if cfg.Jobs < 1 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidJobs, "invalid --jobs"), "jobs", cfg.Jobs)
	}
	a.applyOutputSettings(cfg)
	for _, p := range a.projects {
		p.SetProjectDir(filepath.Dir(cfg.Gemfile))
	}

	lock, err := a.lockfiles.Parse(cfg.Lockfile)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("read %s: %d locked gems, fingerprint %s", cfg.Lockfile, len(lock.Specs), lock.Fingerprint))

	explicit, err := a.manifests.Load(ctx, cfg.Gemfile, lock)
	if err != nil {
		return err
	}

	attrs, err := attributes.Resolve(lock, explicit, cfg.Lockfile)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for _, platform := range cfg.TargetPlatforms() {
		g.Go(func() error {
			return a.convertPlatform(gctx, cfg, lock, attrs, platform)
		})
	}
	return g.Wait()
}

func (a *App) applyOutputSettings(cfg domain.Config) {
	for _, out := range a.outputs {
		out.SetQuiet(cfg.Quiet)
	}
	if q, ok := a.logger.(Quieter); ok {
		q.SetQuiet(cfg.Quiet)
	}
	if j, ok := a.logger.(jsonSwitcher); ok && cfg.LogJSON {
		j.SetJSON(true)
	}
}

func (a *App) convertPlatform(
	ctx context.Context,
	cfg domain.Config,
	lock *domain.Lockfile,
	attrs map[string]domain.AttributeEntry,
	platform string,
) error {
	target := domain.ParsePlatform(platform)
	if !lock.HasPlatform(target) {
		err := zerr.Wrap(domain.ErrPlatformNotLocked,
			fmt.Sprintf("cannot convert for %s, try `bundle lock --add-platform %s`", target, target))
		err = zerr.With(err, "platform", target.String())
		return zerr.With(err, "lockfile", cfg.Lockfile)
	}

	path := cfg.Gemset
	if len(cfg.Platforms) > 0 {
		var err error
		if path, err = domain.PlatformGemsetPath(cfg.Gemset, target.String()); err != nil {
			return err
		}
	}

	prior, err := a.gemsets.Load(ctx, path)
	if err != nil {
		return err
	}

	manifest, err := a.converter.Convert(ctx, domain.ConversionInput{
		Lockfile:   lock,
		Attributes: attrs,
		Prior:      prior,
		Target:     target,
	})
	if err != nil {
		return err
	}

	if err := a.writeGemset(path, manifest); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote %s: %d gems for %s", path, len(manifest), target))
	return nil
}

// writeGemset replaces path atomically so an interrupted run never leaves a truncated gemset.
func (a *App) writeGemset(path string, m domain.Manifest) error {
	fail := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".gemset-*.nix.tmp")
	if err != nil {
		return fail(err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if err := a.writer.Write(tmp, m); err != nil {
		_ = tmp.Close()
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		return fail(err)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return fail(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fail(err)
	}
	return nil
}
