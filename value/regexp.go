package value

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/spf13/viper"

	"github.com/oasisprotocol/deepclone/common/errors"
)

// validFlags lists the supported pattern flags in canonical order.
const validFlags = "dgimsuy"

var (
	patternCache     *lru.Cache
	patternCacheOnce sync.Once
)

// RegExp is a pattern matcher with a mutable match cursor.
//
// The pattern source uses RE2 syntax. Supported flags are d (indices),
// g (global), i (ignore case), m (multi-line), s (dot matches newline),
// u (unicode) and y (sticky). Global and sticky matchers start matching
// at LastIndex and advance it past every successful match.
type RegExp struct {
	source string
	flags  string
	re     *regexp.Regexp

	lastIndex int
}

// Source returns the pattern text.
func (r *RegExp) Source() string {
	return r.source
}

// Flags returns the flags in canonical order.
func (r *RegExp) Flags() string {
	return r.flags
}

// Global returns true iff the g flag is set.
func (r *RegExp) Global() bool {
	return strings.IndexByte(r.flags, 'g') >= 0
}

// IgnoreCase returns true iff the i flag is set.
func (r *RegExp) IgnoreCase() bool {
	return strings.IndexByte(r.flags, 'i') >= 0
}

// Multiline returns true iff the m flag is set.
func (r *RegExp) Multiline() bool {
	return strings.IndexByte(r.flags, 'm') >= 0
}

// Sticky returns true iff the y flag is set.
func (r *RegExp) Sticky() bool {
	return strings.IndexByte(r.flags, 'y') >= 0
}

// LastIndex returns the byte offset at which the next global or sticky
// match starts.
func (r *RegExp) LastIndex() int {
	return r.lastIndex
}

// SetLastIndex sets the match cursor.
func (r *RegExp) SetLastIndex(i int) {
	r.lastIndex = i
}

// Exec searches s for a match and returns the matched text followed by
// the submatches, or nil if there is no match.
func (r *RegExp) Exec(s string) []string {
	advancing := r.Global() || r.Sticky()

	start := 0
	if advancing {
		start = r.lastIndex
		if start < 0 || start > len(s) {
			r.lastIndex = 0
			return nil
		}
	}

	loc := r.re.FindStringSubmatchIndex(s[start:])
	if loc == nil || (r.Sticky() && loc[0] != 0) {
		if advancing {
			r.lastIndex = 0
		}
		return nil
	}

	match := make([]string, len(loc)/2)
	for i := range match {
		if loc[2*i] >= 0 {
			match[i] = s[start+loc[2*i] : start+loc[2*i+1]]
		}
	}
	if advancing {
		r.lastIndex = start + loc[1]
	}
	return match
}

// Test reports whether s contains a match, advancing the cursor like
// Exec does.
func (r *RegExp) Test(s string) bool {
	return r.Exec(s) != nil
}

// PrettyPrint writes a pretty-printed representation of the pattern.
func (r *RegExp) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, r.String())
}

// String returns the pattern in /source/flags form.
func (r *RegExp) String() string {
	return "/" + r.source + "/" + r.flags
}

// NewRegExp compiles a new pattern matcher with a zero cursor.
func NewRegExp(source, flags string) (*RegExp, error) {
	canonical, err := canonicalFlags(flags)
	if err != nil {
		return nil, err
	}

	var inline string
	for _, f := range canonical {
		switch f {
		case 'i', 'm', 's':
			inline += string(f)
		}
	}
	expr := source
	if inline != "" {
		expr = "(?" + inline + ")" + source
	}

	re, err := compilePattern(expr)
	if err != nil {
		return nil, err
	}

	return &RegExp{
		source: source,
		flags:  canonical,
		re:     re,
	}, nil
}

// MustRegExp is like NewRegExp but panics on failure.
func MustRegExp(source, flags string) *RegExp {
	r, err := NewRegExp(source, flags)
	if err != nil {
		panic(err)
	}
	return r
}

func canonicalFlags(flags string) (string, error) {
	var seen [len(validFlags)]bool
	for _, f := range flags {
		idx := strings.IndexRune(validFlags, f)
		if idx < 0 {
			return "", errors.WithContextf(ErrInvalidPattern, "unsupported flag '%c'", f)
		}
		if seen[idx] {
			return "", errors.WithContextf(ErrInvalidPattern, "duplicate flag '%c'", f)
		}
		seen[idx] = true
	}

	var b strings.Builder
	for i, ok := range seen {
		if ok {
			b.WriteByte(validFlags[i])
		}
	}
	return b.String(), nil
}

func compilePattern(expr string) (*regexp.Regexp, error) {
	patternCacheOnce.Do(func() {
		if size := viper.GetInt(CfgPatternCacheSize); size > 0 {
			// Only fails on a non-positive size.
			patternCache, _ = lru.New(size)
		}
	})

	if patternCache != nil {
		if re, ok := patternCache.Get(expr); ok {
			return re.(*regexp.Regexp), nil
		}
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.WithContext(ErrInvalidPattern, err.Error())
	}
	if patternCache != nil {
		patternCache.Add(expr, re)
	}
	return re, nil
}
