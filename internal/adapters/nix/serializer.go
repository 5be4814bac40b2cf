package nix

import (
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/gemnix/internal/core/domain"
	"go.trai.ch/zerr"
)

const indentWidth = 2

var (
	bareIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_'-]*$`)
	plainPath      = regexp.MustCompile(`^[a-zA-Z0-9._+/-]+$`)

	stringEscaper = strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"${", `\${`,
		"\n", `\n`,
		"\r", `\r`,
		"\t", `\t`,
	)
)

// nixKeywords cannot appear as bare attribute names.
var nixKeywords = map[string]bool{
	"assert": true, "else": true, "if": true, "in": true, "inherit": true,
	"let": true, "or": true, "rec": true, "then": true, "with": true,
}

// attrs is a Nix attribute set. Values are attrs, []any, string, bool or pathLiteral.
type attrs map[string]any

// pathLiteral renders as a Nix path instead of a string.
type pathLiteral string

// Serializer implements ports.GemsetWriter.
type Serializer struct{}

// NewSerializer creates a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Write renders m as a Nix attribute set with keys sorted at every level.
func (s *Serializer) Write(w io.Writer, m domain.Manifest) error {
	root := make(attrs, len(m))
	for name, entry := range m {
		value, err := entryAttrs(entry)
		if err != nil {
			return zerr.With(err, "gem", name)
		}
		root[name] = value
	}

	var b strings.Builder
	render(&b, root, 0)
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return zerr.Wrap(err, domain.ErrManifestWriteFailed.Error())
	}
	return nil
}

func entryAttrs(e domain.ResolvedEntry) (attrs, error) {
	out := attrs{}
	if e.Version != "" {
		out["version"] = e.Version
	}
	if e.TargetPlatform != "" {
		out["target_platform"] = e.TargetPlatform
	}
	if e.GemPlatform != "" {
		out["gem_platform"] = e.GemPlatform
	}
	if e.Platforms != nil {
		platforms := make([]any, 0, len(e.Platforms))
		for _, c := range e.Platforms {
			constraint := attrs{"engine": c.Engine}
			if c.Version != "" {
				constraint["version"] = c.Version
			}
			platforms = append(platforms, constraint)
		}
		out["platforms"] = platforms
	}
	if len(e.Groups) > 0 {
		out["groups"] = stringList(e.Groups)
	}
	if e.Source != nil {
		source, err := sourceAttrs(*e.Source)
		if err != nil {
			return nil, err
		}
		out["source"] = source
	}
	if len(e.Dependencies) > 0 {
		out["dependencies"] = stringList(e.Dependencies)
	}
	return out, nil
}

func sourceAttrs(s domain.SourceBlock) (attrs, error) {
	switch s.Type {
	case domain.SourceTypeGem:
		return attrs{
			"type":    string(s.Type),
			"remotes": stringList(s.Remotes),
			"sha256":  s.SHA256,
		}, nil
	case domain.SourceTypeGit:
		return attrs{
			"type":            string(s.Type),
			"url":             s.URL,
			"rev":             s.Rev,
			"sha256":          s.SHA256,
			"fetchSubmodules": s.FetchSubmodules,
		}, nil
	case domain.SourceTypePath:
		return attrs{
			"type": string(s.Type),
			"path": pathLiteral(s.Path),
		}, nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownSource, "cannot serialize source"), "type", string(s.Type))
	}
}

func stringList(items []string) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}

// render writes v. indent is the column of the line v starts on.
func render(b *strings.Builder, v any, indent int) {
	switch v := v.(type) {
	case attrs:
		if len(v) == 0 {
			b.WriteString("{}")
			return
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		b.WriteString("{\n")
		for _, k := range keys {
			b.WriteString(strings.Repeat(" ", indent+indentWidth))
			b.WriteString(quoteKey(k))
			b.WriteString(" = ")
			render(b, v[k], indent+indentWidth)
			b.WriteString(";\n")
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString("}")
	case []any:
		b.WriteString("[")
		for i, item := range v {
			if i > 0 {
				b.WriteString(" ")
			}
			render(b, item, indent)
		}
		b.WriteString("]")
	case string:
		b.WriteString(quoteString(v))
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case pathLiteral:
		b.WriteString(renderPath(string(v)))
	}
}

func quoteKey(k string) string {
	if bareIdentifier.MatchString(k) && !nixKeywords[k] {
		return k
	}
	return quoteString(k)
}

func quoteString(s string) string {
	return `"` + stringEscaper.Replace(s) + `"`
}

// renderPath renders p as a path literal, relative paths anchored at the gemset's directory.
// Paths a literal cannot hold are built by appending a string to ./. or /.
func renderPath(p string) string {
	if p != "/" {
		p = strings.TrimSuffix(p, "/")
	}
	absolute := strings.HasPrefix(p, "/")

	if p == "" || !plainPath.MatchString(p) || strings.Contains(p, "//") {
		if absolute {
			return "(/. + " + quoteString(p) + ")"
		}
		return "(./. + " + quoteString("/"+p) + ")"
	}

	switch {
	case p == "/":
		return "/."
	case absolute, strings.HasPrefix(p, "./"), strings.HasPrefix(p, "../"):
		return p
	default:
		return "./" + p
	}
}
