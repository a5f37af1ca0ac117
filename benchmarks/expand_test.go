package benchmarks

import (
	"strings"
	"testing"

	"github.com/randalmurphal/refexpand/pkg/refexpand"
)

// benchCaps builds a capture set with n indexed groups plus one named group.
func benchCaps(n int) refexpand.MapCaptures {
	indexed := make([]string, n+1)
	indexed[0] = "whole-match"
	for i := 1; i <= n; i++ {
		indexed[i] = "indexed-value"
	}
	return refexpand.MapCaptures{
		Named:   map[string]string{"group": "named-value"},
		Indexed: indexed,
	}
}

// BenchmarkExpand_LiteralOnly measures templates with no references.
func BenchmarkExpand_LiteralOnly(b *testing.B) {
	exp := refexpand.Default()
	caps := benchCaps(4)
	template := strings.Repeat("plain text with no references ", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = exp.Expand(caps, template)
	}
}

// BenchmarkExpand_Named measures delimited name references.
func BenchmarkExpand_Named(b *testing.B) {
	exp := refexpand.Default()
	caps := benchCaps(4)
	template := "a ${group} b ${group} c ${group} d"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = exp.Expand(caps, template)
	}
}

// BenchmarkExpand_Numeric measures bare numeric references.
func BenchmarkExpand_Numeric(b *testing.B) {
	exp := refexpand.Python()
	caps := benchCaps(4)
	template := `a \1 b \2 c \3 d`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = exp.Expand(caps, template)
	}
}

// BenchmarkExpand_Mixed measures a mix of literals, names, numbers, and
// escapes.
func BenchmarkExpand_Mixed(b *testing.B) {
	exp := refexpand.Default()
	caps := benchCaps(4)
	template := "literal $$ escape, ${group} name, $1 number, $group bare, tail"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = exp.Expand(caps, template)
	}
}

// BenchmarkExpandTo_Builder measures writer-directed expansion reusing a
// builder.
func BenchmarkExpandTo_Builder(b *testing.B) {
	exp := refexpand.Default()
	caps := benchCaps(4)
	template := "a ${group} b $1 c"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		_ = exp.ExpandTo(&sb, caps, template)
	}
}
