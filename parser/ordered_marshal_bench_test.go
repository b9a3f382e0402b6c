package parser

import (
	"os"
	"testing"
)

// Parsing happens outside the timed loops so only marshaling cost shows up.

func parseOrdered(b *testing.B, opts ...Option) *ParseResult {
	b.Helper()
	result, err := ParseWithOptions(opts...)
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	return result
}

var orderedBenchDocs = []struct {
	name string
	path string
}{
	{"Skeleton", skeletonPath},
	{"UsersService", usersServicePath},
	{"BillingService", billingServicePath},
}

func BenchmarkMarshalOrderedJSON(b *testing.B) {
	for _, doc := range orderedBenchDocs {
		b.Run(doc.name, func(b *testing.B) {
			result := parseOrdered(b, WithFilePath(doc.path), WithPreserveOrder(true))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := result.MarshalOrderedJSON(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMarshalOrderedYAML(b *testing.B) {
	for _, doc := range orderedBenchDocs {
		b.Run(doc.name, func(b *testing.B) {
			result := parseOrdered(b, WithFilePath(doc.path), WithPreserveOrder(true))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := result.MarshalOrderedYAML(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMarshalOrderedJSONIndent(b *testing.B) {
	result := parseOrdered(b, WithFilePath(usersServicePath), WithPreserveOrder(true))
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := result.MarshalOrderedJSONIndent("", "  "); err != nil {
			b.Fatal(err)
		}
	}
}

// Measures the marshaling overhead of order preservation. Without
// PreserveOrder, MarshalOrderedJSON falls back to standard marshaling.
func BenchmarkMarshalOrderedJSON_vs_Standard(b *testing.B) {
	data, err := os.ReadFile(usersServicePath)
	if err != nil {
		b.Fatalf("reading fixture: %v", err)
	}

	for _, preserve := range []bool{true, false} {
		name := "Standard"
		if preserve {
			name = "OrderPreserving"
		}
		b.Run(name, func(b *testing.B) {
			result := parseOrdered(b, WithBytes(data), WithPreserveOrder(preserve))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				if _, err := result.MarshalOrderedJSON(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// Measures the parse-time cost of retaining the YAML node tree.
func BenchmarkPreserveOrderOverhead(b *testing.B) {
	data, err := os.ReadFile(usersServicePath)
	if err != nil {
		b.Fatalf("reading fixture: %v", err)
	}

	for _, preserve := range []bool{true, false} {
		name := "WithoutPreserveOrder"
		if preserve {
			name = "WithPreserveOrder"
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				if _, err := ParseWithOptions(WithBytes(data), WithPreserveOrder(preserve)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
