// Package converter turns a parsed lockfile into gemset records for one target platform.
package converter

import (
	"context"
	"fmt"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/zerr"
)

// Converter selects one locked variant per gem, resolves its source and assembles the gemset record.
type Converter struct {
	fetcher ports.SourceFetcher
	logger  ports.Logger
	tracer  ports.Tracer
}

// New creates a Converter.
func New(fetcher ports.SourceFetcher, logger ports.Logger, tracer ports.Tracer) *Converter {
	return &Converter{
		fetcher: fetcher,
		logger:  logger,
		tracer:  tracer,
	}
}

// Convert builds the gemset for in.Target.
//
// A gem whose source cannot be resolved is logged and emitted as a record holding only its
// dependencies, so one broken gem never fails the run. Only cancellation of ctx aborts.
func (c *Converter) Convert(ctx context.Context, in domain.ConversionInput) (domain.Manifest, error) {
	selected := Select(in.Lockfile.Specs, in.Target)

	names := make([]string, 0, len(selected))
	for _, spec := range selected {
		names = append(names, spec.Name)
	}
	c.tracer.EmitPlan(ctx, names)

	manifest := make(domain.Manifest, len(selected))
	for _, spec := range selected {
		entry, err := c.convertSpec(ctx, spec, in)
		if err != nil {
			return nil, err
		}
		manifest[spec.Name] = entry
	}
	return manifest, nil
}

func (c *Converter) convertSpec(ctx context.Context, spec domain.PackageSpec, in domain.ConversionInput) (domain.ResolvedEntry, error) {
	ctx, span := c.tracer.Start(ctx, "convert "+spec.Name, ports.WithGem(spec.Name))
	defer span.End()

	result, hit := Reuse(spec.Name, spec, in.Prior, in.Target)
	span.SetAttribute("cache_hit", hit)

	var entry domain.ResolvedEntry
	if hit {
		_, _ = fmt.Fprintf(span, "reusing %s from existing gemset\n", result.Version)
	} else {
		var err error
		result, err = c.fetcher.Fetch(ctx, spec)
		if err != nil {
			span.RecordError(err)
			if ctxErr := ctx.Err(); ctxErr != nil {
				return domain.ResolvedEntry{}, zerr.With(zerr.Wrap(ctxErr, "conversion cancelled"), "gem", spec.Name)
			}
			c.logger.Warn(fmt.Sprintf("skipping %s: %v", spec.Name, err))
			return withDependencies(entry, spec), nil
		}
	}

	span.SetAttribute("version", result.Version)
	span.SetAttribute("source", string(result.Source.Type))

	attrs := in.Attributes[spec.Name]
	source := result.Source
	entry = domain.ResolvedEntry{
		Version:        result.Version,
		TargetPlatform: in.Target.String(),
		GemPlatform:    spec.Platform.String(),
		Platforms:      domain.ExpandPlatformTags(attrs.Platforms.Sorted()),
		Groups:         attrs.RenderedGroups(),
		Source:         &source,
	}
	return withDependencies(entry, spec), nil
}

func withDependencies(entry domain.ResolvedEntry, spec domain.PackageSpec) domain.ResolvedEntry {
	if len(spec.Dependencies) > 0 {
		entry.Dependencies = spec.DependencyNames()
	}
	return entry
}

// Select picks one variant per gem name for target, keeping the order in which names first appear.
//
// Candidates are scanned last to first so that the generic, git and path variants Bundler
// lists after platform gems act as the fallback. Names without a usable variant are dropped.
func Select(specs []domain.PackageSpec, target domain.Platform) []domain.PackageSpec {
	var order []string
	byName := make(map[string][]domain.PackageSpec)
	for _, spec := range specs {
		if _, seen := byName[spec.Name]; !seen {
			order = append(order, spec.Name)
		}
		byName[spec.Name] = append(byName[spec.Name], spec)
	}

	selected := make([]domain.PackageSpec, 0, len(order))
	for _, name := range order {
		candidates := byName[name]
		for i := len(candidates) - 1; i >= 0; i-- {
			if domain.Compatible(candidates[i].Platform, target) {
				selected = append(selected, candidates[i])
				break
			}
		}
	}
	return selected
}
