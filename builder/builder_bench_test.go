package builder

import (
	"strings"
	"testing"
)

func BenchmarkAppendString_ASCII(b *testing.B) {
	s := strings.Repeat("metric.cpu.usage ", 8)
	sb, _ := New()

	b.ReportAllocs()
	for b.Loop() {
		sb.Reset().AppendString(s)
	}
}

func BenchmarkAppendString_Wide(b *testing.B) {
	s := strings.Repeat("température ", 8)
	sb, _ := New()

	b.ReportAllocs()
	for b.Loop() {
		sb.Reset().AppendString(s)
	}
}

func BenchmarkAppendUnit(b *testing.B) {
	sb, _ := New(WithCapacity(1024))

	b.ReportAllocs()
	for b.Loop() {
		sb.Reset()
		for i := range 512 {
			sb.AppendUnit(uint16('a' + i%26))
		}
	}
}

func BenchmarkAppendInt(b *testing.B) {
	sb, _ := New()

	b.ReportAllocs()
	for b.Loop() {
		sb.Reset().AppendInt(-1234567890)
	}
}

func BenchmarkAppendFloat64(b *testing.B) {
	sb, _ := New()

	b.ReportAllocs()
	for b.Loop() {
		sb.Reset().AppendFloat64(3.14159)
	}
}

func BenchmarkSubstring_WideToCompact(b *testing.B) {
	sb, _ := FromString("é" + strings.Repeat("ascii tail ", 16))

	b.ReportAllocs()
	for b.Loop() {
		_ = sb.Substring(1, sb.Len())
	}
}

func BenchmarkIndexOf_Wide(b *testing.B) {
	sb, _ := FromString(strings.Repeat("ñandú ", 64) + "needle")

	b.ReportAllocs()
	for b.Loop() {
		_ = sb.IndexOfString("needle")
	}
}
