package converter

import "go.trai.ch/gemnix/internal/core/domain"

// Reuse returns the version and source recorded for name in prior when they still describe spec on target.
//
// Gem sources need an equal version and git sources an equal, non-empty revision.
// Path sources are never reused since resolving them costs nothing.
func Reuse(name string, spec domain.PackageSpec, prior domain.Manifest, target domain.Platform) (domain.FetchResult, bool) {
	record, ok := prior[name]
	if !ok || record.Source == nil || record.TargetPlatform != target.String() {
		return domain.FetchResult{}, false
	}

	switch src := spec.Source.(type) {
	case domain.GemSource:
		if record.Source.Type != domain.SourceTypeGem || record.Version != spec.Version {
			return domain.FetchResult{}, false
		}
	case domain.GitSource:
		if record.Source.Type != domain.SourceTypeGit || record.Source.Rev == "" || record.Source.Rev != src.Revision {
			return domain.FetchResult{}, false
		}
	default:
		return domain.FetchResult{}, false
	}

	return domain.FetchResult{Version: record.Version, Source: *record.Source}, true
}
