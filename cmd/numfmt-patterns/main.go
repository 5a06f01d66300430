package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	cldr "golang.org/x/text/unicode/cldr"

	"github.com/goliatone/go-numfmt"
)

// options drives a single generator run.
type options struct {
	pkg     string
	out     string
	dataDir string
	locales []string
}

type patternEntry struct {
	Locale  string
	Pattern numfmt.CurrencyPattern
}

// localeList collects -locale values, each either repeated or comma separated.
type localeList []string

func (l *localeList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *localeList) Set(value string) error {
	for _, locale := range strings.Split(value, ",") {
		if locale = strings.TrimSpace(locale); locale != "" {
			*l = append(*l, locale)
		}
	}
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err == nil {
		err = generate(opts)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "numfmt-patterns: %v\n", err)
		os.Exit(1)
	}
}

func parseArgs(args []string) (options, error) {
	var (
		opts    options
		locales localeList
	)

	fs := flag.NewFlagSet("numfmt-patterns", flag.ContinueOnError)
	fs.StringVar(&opts.pkg, "pkg", "numfmt", "package clause of the generated file")
	fs.StringVar(&opts.out, "out", "currency_patterns_data.go", "output file")
	fs.StringVar(&opts.dataDir, "cldr", os.Getenv("CLDR_CORE_DIR"), "CLDR core directory holding main/ (defaults to $CLDR_CORE_DIR)")
	fs.Var(&locales, "locale", "locales to extract, repeated or comma separated")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case len(locales) == 0:
		return options{}, errors.New("no -locale given")
	case opts.dataDir == "":
		return options{}, errors.New("no CLDR directory given, pass -cldr or set CLDR_CORE_DIR")
	}
	opts.locales = locales
	return opts, nil
}

func generate(opts options) error {
	data, err := decodeCLDR(opts.dataDir)
	if err != nil {
		return err
	}

	entries, err := buildEntries(data, opts.locales)
	if err != nil {
		return err
	}

	source, err := renderSource(opts.pkg, entries)
	if err != nil {
		return err
	}

	if err := ensureDir(opts.out); err != nil {
		return err
	}
	return os.WriteFile(opts.out, source, 0o644)
}

func decodeCLDR(dir string) (*cldr.CLDR, error) {
	if info, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("cldr dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("cldr dir %q: not a directory", dir)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(dir)
	if err != nil {
		return nil, fmt.Errorf("cldr decode: %w", err)
	}
	return data, nil
}

func buildEntries(data *cldr.CLDR, locales []string) ([]patternEntry, error) {
	seen := make(map[string]struct{}, len(locales))
	entries := make([]patternEntry, 0, len(locales))

	for _, raw := range locales {
		locale := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
		if _, err := language.Parse(locale); err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", raw, err)
		}
		if _, dup := seen[locale]; dup {
			continue
		}
		seen[locale] = struct{}{}

		source := findCurrencyPattern(data, locale)
		if source == "" {
			return nil, fmt.Errorf("no standard currency pattern for %s", locale)
		}

		pattern, err := numfmt.ParseCurrencyPattern(source)
		if err != nil {
			return nil, fmt.Errorf("parse pattern for %s: %w", locale, err)
		}
		pattern.Locale = locale

		entries = append(entries, patternEntry{Locale: locale, Pattern: pattern})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Locale < entries[j].Locale
	})
	return entries, nil
}

// findCurrencyPattern walks the locale inheritance chain until an LDML file
// defines a standard currency pattern.
func findCurrencyPattern(data *cldr.CLDR, locale string) string {
	for _, candidate := range inheritanceChain(locale) {
		ldml := data.RawLDML(strings.ReplaceAll(candidate, "-", "_"))
		if pattern := standardCurrencyPattern(ldml); pattern != "" {
			return pattern
		}
	}
	return standardCurrencyPattern(data.RawLDML("root"))
}

func inheritanceChain(locale string) []string {
	chain := []string{locale}

	tag, err := language.Parse(locale)
	if err != nil {
		return chain
	}
	for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
		chain = append(chain, parent.String())
	}

	if idx := strings.Index(locale, "-"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}

func standardCurrencyPattern(ldml *cldr.LDML) string {
	if ldml == nil || ldml.Numbers == nil {
		return ""
	}

	for _, formats := range ldml.Numbers.CurrencyFormats {
		if formats == nil {
			continue
		}
		if formats.NumberSystem != "" && formats.NumberSystem != "latn" {
			continue
		}

		for _, length := range formats.CurrencyFormatLength {
			if length == nil || length.Type != "" {
				continue
			}
			for _, format := range length.CurrencyFormat {
				if format == nil || (format.Type != "" && format.Type != "standard") {
					continue
				}
				for _, pattern := range format.Pattern {
					if pattern == nil || pattern.Alt != "" {
						continue
					}
					if value := pattern.Data(); value != "" {
						return value
					}
				}
			}
		}
	}
	return ""
}

func renderSource(pkg string, entries []patternEntry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by numfmt-patterns. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var currencyPatternData = map[string]CurrencyPattern{\n")
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t%q: {\n", entry.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", entry.Pattern.Locale)
		fmt.Fprintf(&buf, "\t\tPattern: %q,\n", entry.Pattern.Pattern)
		fmt.Fprintf(&buf, "\t\tSymbolPosition: %s,\n", symbolPositionIdent(entry.Pattern.SymbolPosition))
		fmt.Fprintf(&buf, "\t\tSpacing: %q,\n", entry.Pattern.Spacing)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedPatternLocales = []string{\n")
	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t%q,\n", entry.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedPatternLocales lists the locales with a built-in currency pattern.\n")
	buf.WriteString("func GeneratedPatternLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedPatternLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func symbolPositionIdent(position numfmt.SymbolPosition) string {
	if position == numfmt.SymbolAfter {
		return "SymbolAfter"
	}
	return "SymbolBefore"
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
