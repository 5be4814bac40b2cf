package converter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gemnix/internal/adapters/telemetry"
	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/gemnix/internal/core/ports"
	"go.trai.ch/gemnix/internal/core/ports/mocks"
	"go.trai.ch/gemnix/internal/engine/converter"
	"go.uber.org/mock/gomock"
)

const nixHash = "0jyd3ydcp4w0pb3dn6j0dr6nvhkrzhnzmrzvm24cdhv85xqcrhpi"

var rubygems = domain.GemSource{Remotes: []string{"https://rubygems.org"}}

func gemResult(version string) domain.FetchResult {
	return domain.FetchResult{
		Version: version,
		Source:  domain.SourceBlock{Type: domain.SourceTypeGem, Remotes: []string{"https://rubygems.org"}, SHA256: nixHash},
	}
}

func TestSelect(t *testing.T) {
	specs := []domain.PackageSpec{
		{Name: "nokogiri", Version: "1.13.10", Platform: domain.ParsePlatform("x86_64-linux")},
		{Name: "sorbet-static", Version: "0.4.4821", Platform: domain.ParsePlatform("java")},
		{Name: "sorbet-static", Version: "0.4.4821"},
		{Name: "thor", Version: "0.19.4"},
	}

	t.Run("generic target", func(t *testing.T) {
		got := converter.Select(specs, domain.GenericPlatform)
		require.Len(t, got, 2)
		assert.Equal(t, "sorbet-static", got[0].Name)
		assert.True(t, got[0].Platform.IsGeneric())
		assert.Equal(t, "thor", got[1].Name)
	})

	t.Run("java target", func(t *testing.T) {
		got := converter.Select(specs, domain.ParsePlatform("java"))
		require.Len(t, got, 2)
		assert.True(t, got[0].Platform.IsGeneric(), "the generic variant is listed last and scanned first")
	})

	t.Run("java variant listed last", func(t *testing.T) {
		reordered := []domain.PackageSpec{specs[2], specs[1]}
		got := converter.Select(reordered, domain.ParsePlatform("java"))
		require.Len(t, got, 1)
		assert.Equal(t, "java", got[0].Platform.String())
	})

	t.Run("linux target", func(t *testing.T) {
		got := converter.Select(specs, domain.ParsePlatform("x86_64-linux"))
		require.Len(t, got, 3)
		assert.Equal(t, "nokogiri", got[0].Name)
		assert.Equal(t, "x86_64-linux", got[0].Platform.String())
	})
}

func TestConvert_BuildsRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	c := converter.New(fetcher, log, telemetry.NewNoOpTracer())

	java := domain.ParsePlatform("java")
	sorbet := domain.PackageSpec{Name: "sorbet-static", Version: "0.4.4821", Platform: java, Source: rubygems}
	rails := domain.PackageSpec{
		Name:    "rails",
		Version: "7.0.4",
		Source:  rubygems,
		Dependencies: []domain.Dependency{
			{Name: "bundler", Requirement: ">= 1.15.0"},
			{Name: "sorbet-static", Requirement: ">= 0"},
		},
	}
	in := domain.ConversionInput{
		Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{
			rails,
			{Name: "sorbet-static", Version: "0.4.4821", Source: rubygems},
			sorbet,
		}},
		Attributes: map[string]domain.AttributeEntry{
			"rails":         {Name: "rails", Groups: domain.NewSet("default"), Platforms: domain.NewSet("jruby")},
			"sorbet-static": {Name: "sorbet-static", Groups: domain.NewSet(), Platforms: domain.NewSet("jruby")},
		},
		Target: java,
	}

	fetcher.EXPECT().Fetch(gomock.Any(), rails).Return(gemResult("7.0.4"), nil)
	fetcher.EXPECT().Fetch(gomock.Any(), sorbet).Return(gemResult("0.4.4821-java-unknown"), nil)

	got, err := c.Convert(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, got, 2)

	source := gemResult("").Source
	assert.Equal(t, domain.ResolvedEntry{
		Version:        "7.0.4",
		TargetPlatform: "java",
		GemPlatform:    "ruby",
		Platforms:      []domain.PlatformConstraint{{Engine: "jruby"}},
		Groups:         []string{"default"},
		Source:         &source,
		Dependencies:   []string{"sorbet-static"},
	}, got["rails"])

	assert.Equal(t, domain.ResolvedEntry{
		Version:        "0.4.4821-java-unknown",
		TargetPlatform: "java",
		GemPlatform:    "java",
		Platforms:      []domain.PlatformConstraint{{Engine: "jruby"}},
		Groups:         []string{"default"},
		Source:         &source,
	}, got["sorbet-static"])
}

func TestConvert_ReusesPriorRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	c := converter.New(fetcher, log, telemetry.NewNoOpTracer())

	prior := &domain.SourceBlock{Type: domain.SourceTypeGem, Remotes: []string{"https://gems.example"}, SHA256: "prior"}
	in := domain.ConversionInput{
		Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{{Name: "foo", Version: "1.0.0", Source: rubygems}}},
		Prior: domain.Manifest{
			"foo": {Version: "1.0.0", TargetPlatform: "ruby", Groups: []string{"stale"}, Source: prior},
		},
	}

	got, err := c.Convert(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, *prior, *got["foo"].Source)
	assert.Equal(t, []string{"default"}, got["foo"].Groups, "attributes are recomputed")
	assert.Equal(t, []domain.PlatformConstraint{}, got["foo"].Platforms)
}

func TestConvert_PriorForOtherTargetIsRefetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	c := converter.New(fetcher, log, telemetry.NewNoOpTracer())

	foo := domain.PackageSpec{Name: "foo", Version: "1.0.0", Source: rubygems}
	in := domain.ConversionInput{
		Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{foo}},
		Prior: domain.Manifest{
			"foo": {Version: "1.0.0", TargetPlatform: "x86_64-linux", Source: &domain.SourceBlock{Type: domain.SourceTypeGem}},
		},
	}

	fetcher.EXPECT().Fetch(gomock.Any(), foo).Return(gemResult("1.0.0"), nil)

	got, err := c.Convert(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, nixHash, got["foo"].Source.SHA256)
}

func TestConvert_FailedGemKeepsDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	c := converter.New(fetcher, log, telemetry.NewNoOpTracer())

	broken := domain.PackageSpec{
		Name:         "broken",
		Version:      "1.0.0",
		Source:       rubygems,
		Dependencies: []domain.Dependency{{Name: "rack"}},
	}
	lonely := domain.PackageSpec{Name: "lonely", Version: "1.0.0", Source: rubygems}
	in := domain.ConversionInput{Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{broken, lonely}}}

	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(domain.FetchResult{}, domain.ErrResolution).Times(2)
	log.EXPECT().Warn("skipping broken: couldn't fetch hash")
	log.EXPECT().Warn("skipping lonely: couldn't fetch hash")

	got, err := c.Convert(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, domain.ResolvedEntry{Dependencies: []string{"rack"}}, got["broken"])
	assert.True(t, got["lonely"].IsEmpty())
	assert.Contains(t, got, "lonely")
}

func TestConvert_Cancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	c := converter.New(fetcher, log, telemetry.NewNoOpTracer())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := domain.ConversionInput{Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{
		{Name: "foo", Version: "1.0.0", Source: rubygems},
		{Name: "bar", Version: "1.0.0", Source: rubygems},
	}}}
	fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(domain.FetchResult{}, context.Canceled).Times(1)

	_, err := c.Convert(ctx, in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestConvert_Spans(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockSourceFetcher(ctrl)
	log := mocks.NewMockLogger(ctrl)
	tracer := mocks.NewMockTracer(ctrl)
	span := mocks.NewMockSpan(ctrl)
	c := converter.New(fetcher, log, tracer)

	rack := domain.PackageSpec{Name: "rack", Version: "2.2.4", Source: rubygems}
	in := domain.ConversionInput{Lockfile: &domain.Lockfile{Specs: []domain.PackageSpec{rack}}}

	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"rack"})
	tracer.EXPECT().Start(gomock.Any(), "convert rack", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, opts ...ports.SpanOption) (context.Context, ports.Span) {
			cfg := &ports.SpanConfig{}
			for _, opt := range opts {
				opt(cfg)
			}
			assert.Equal(t, "rack", cfg.Gem)
			return ctx, span
		})
	span.EXPECT().SetAttribute("cache_hit", false)
	span.EXPECT().SetAttribute("version", "2.2.4")
	span.EXPECT().SetAttribute("source", "gem")
	span.EXPECT().End()
	fetcher.EXPECT().Fetch(gomock.Any(), rack).Return(gemResult("2.2.4"), nil)

	_, err := c.Convert(context.Background(), in)
	require.NoError(t, err)
}
