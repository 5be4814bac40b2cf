package domain

import (
	"regexp"
	"strings"
)

// GenericPlatformName is the name Bundler gives platform-independent gems.
const GenericPlatformName = "ruby"

// Platform is a gem platform triple. The zero value is the generic "ruby" platform.
type Platform struct {
	// CPU is the architecture, e.g. "x86_64". Empty means any CPU.
	CPU string
	// OS is the operating system family, e.g. "linux", "darwin" or "java".
	OS string
	// Version is the OS version or libc tag, e.g. "19" or "musl".
	Version string
}

// GenericPlatform is the platform of pure-ruby gems.
var GenericPlatform = Platform{}

type osRule struct {
	pattern *regexp.Regexp
	os      string
	// group is the submatch holding the version, or 0 when the rule carries none.
	group int
}

var osRules = []osRule{
	{regexp.MustCompile(`aix-?(\d+)?`), "aix", 1},
	{regexp.MustCompile(`cygwin`), "cygwin", 0},
	{regexp.MustCompile(`darwin-?(\d+)?`), "darwin", 1},
	{regexp.MustCompile(`^macruby$`), "macruby", 0},
	{regexp.MustCompile(`^macruby-?(\d+(?:\.\d+)*)?`), "macruby", 1},
	{regexp.MustCompile(`freebsd-?(\d+)?`), "freebsd", 1},
	{regexp.MustCompile(`^(?:java|jruby)$`), "java", 0},
	{regexp.MustCompile(`^java-?(\d+(?:\.\d+)*)?`), "java", 1},
	{regexp.MustCompile(`^dalvik-?(\d+)?$`), "dalvik", 1},
	{regexp.MustCompile(`^dotnet$`), "dotnet", 0},
	{regexp.MustCompile(`^dotnet-?(\d+(?:\.\d+)*)?`), "dotnet", 1},
	{regexp.MustCompile(`linux-?(\w+)?`), "linux", 1},
	{regexp.MustCompile(`mingw32`), "mingw32", 0},
	{regexp.MustCompile(`mingw-?(\w+)?`), "mingw", 1},
	{regexp.MustCompile(`netbsdelf`), "netbsdelf", 0},
	{regexp.MustCompile(`openbsd-?(\d+\.\d+)?`), "openbsd", 1},
	{regexp.MustCompile(`solaris-?(\d+\.\d+)?`), "solaris", 1},
	{regexp.MustCompile(`wasi`), "wasi", 0},
}

var (
	legacyX86CPU = regexp.MustCompile(`^i\d86$`)
	mswinOS      = regexp.MustCompile(`(mswin\d+)(?:[_-](\d+))?`)
)

// ParsePlatform parses a platform string the way RubyGems does.
// Operating systems it cannot classify become "unknown", so "java-123" parses as java-unknown.
func ParsePlatform(s string) Platform {
	s = strings.TrimRight(s, "-")
	if s == "" || s == GenericPlatformName {
		return GenericPlatform
	}

	rawCPU, os, hasOS := strings.Cut(s, "-")
	cpu := rawCPU
	if legacyX86CPU.MatchString(cpu) {
		cpu = "x86"
	}
	if !hasOS {
		cpu = ""
		os = rawCPU
	}

	if m := mswinOS.FindStringSubmatch(os); m != nil {
		if cpu == "" && strings.HasSuffix(m[1], "32") {
			cpu = "x86"
		}
		return Platform{CPU: cpu, OS: m[1], Version: m[2]}
	}

	for _, rule := range osRules {
		m := rule.pattern.FindStringSubmatch(os)
		if m == nil {
			continue
		}
		p := Platform{CPU: cpu, OS: rule.os}
		if rule.group > 0 {
			p.Version = m[rule.group]
		}
		return p
	}

	return Platform{CPU: cpu, OS: "unknown"}
}

// IsGeneric reports whether p is the platform-independent "ruby" platform.
func (p Platform) IsGeneric() bool {
	return p == GenericPlatform
}

// String renders the platform as it appears in lockfiles and gem file names.
func (p Platform) String() string {
	if p.IsGeneric() {
		return GenericPlatformName
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{p.CPU, p.OS, p.Version} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}

// Matches reports whether p covers other, with wildcard CPUs and OS-specific version rules.
func (p Platform) Matches(other Platform) bool {
	if p.IsGeneric() || other.IsGeneric() {
		return false
	}

	if (p.CPU == "universal" || other.CPU == "universal") &&
		strings.HasPrefix(p.OS, "mingw") && strings.HasPrefix(other.OS, "mingw") {
		return true
	}

	cpuMatches := p.CPU == "" || p.CPU == "universal" ||
		other.CPU == "" || other.CPU == "universal" ||
		p.CPU == other.CPU ||
		(p.CPU == "arm" && strings.HasPrefix(other.CPU, "armv"))
	if !cpuMatches || p.OS != other.OS {
		return false
	}

	if p.OS != "linux" {
		return p.Version == "" || other.Version == "" || p.Version == other.Version
	}

	if normalizedLinuxVersion(p.Version) == normalizedLinuxVersion(other.Version) {
		return true
	}
	switch other.Version {
	case "musl" + p.Version, "musleabi" + p.Version, "musleabihf" + p.Version:
		return true
	}
	return p.Version == other.Version
}

// normalizedLinuxVersion strips the gnu prefix and eabi suffixes that do not change ABI compatibility.
func normalizedLinuxVersion(v string) string {
	v = strings.TrimPrefix(v, "gnu")
	if trimmed, ok := strings.CutSuffix(v, "eabihf"); ok {
		return trimmed
	}
	return strings.TrimSuffix(v, "eabi")
}

type legacyRule struct {
	pattern *regexp.Regexp
	build   func(m []string) Platform
}

// legacyPlatforms maps platform strings published before the triple format existed.
var legacyPlatforms = []legacyRule{
	{regexp.MustCompile(`^i686-darwin(\d)`), func(m []string) Platform { return Platform{"x86", "darwin", m[1]} }},
	{regexp.MustCompile(`^i\d86-linux`), func(_ []string) Platform { return Platform{"x86", "linux", ""} }},
	{regexp.MustCompile(`^(?:java|jruby)$`), func(_ []string) Platform { return Platform{"", "java", ""} }},
	{regexp.MustCompile(`^dalvik(\d+)?$`), func(m []string) Platform { return Platform{"", "dalvik", m[1]} }},
	{regexp.MustCompile(`dotnet(-(\d+\.\d+))?`), func(m []string) Platform { return Platform{"universal", "dotnet", m[2]} }},
	{regexp.MustCompile(`mswin32(_(\d+))?`), func(m []string) Platform { return Platform{"x86", "mswin32", m[2]} }},
	{regexp.MustCompile(`mswin64(_(\d+))?`), func(m []string) Platform { return Platform{"x64", "mswin64", m[2]} }},
	{regexp.MustCompile(`^powerpc-darwin$`), func(_ []string) Platform { return Platform{"powerpc", "darwin", ""} }},
	{regexp.MustCompile(`powerpc-darwin(\d)`), func(m []string) Platform { return Platform{"powerpc", "darwin", m[1]} }},
	{regexp.MustCompile(`sparc-solaris2.8`), func(_ []string) Platform { return Platform{"sparc", "solaris", "2.8"} }},
	{regexp.MustCompile(`universal-darwin(\d)`), func(m []string) Platform { return Platform{"universal", "darwin", m[1]} }},
}

// MatchesString parses s, honouring legacy platform names, and reports whether p covers it.
func (p Platform) MatchesString(s string) bool {
	for _, rule := range legacyPlatforms {
		if m := rule.pattern.FindStringSubmatch(s); m != nil {
			return p.Matches(rule.build(m))
		}
	}
	return p.Matches(ParsePlatform(s))
}

// Compatible reports whether a lockfile variant built for candidate can be used on target.
// Generic variants are always usable; a generic target accepts nothing else.
func Compatible(candidate, target Platform) bool {
	if candidate.IsGeneric() {
		return true
	}
	return candidate.Matches(target)
}
