// SPDX-License-Identifier: MIT
// Package generator_test: generation throughput benchmarks. DenseNet is the
// heaviest template (58 dense layers ⇒ ~470 nodes per graph).
package generator_test

import (
	"testing"

	"github.com/katalvlaran/archgraph/core"
	"github.com/katalvlaran/archgraph/generator"
)

func benchGenerate(b *testing.B, gen generator.Generator, opts ...generator.Option) {
	b.Helper()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(opts...); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCNNGenerate_Depth8(b *testing.B) {
	gen, err := generator.NewCNN(10, core.Shape{32, 32, 3})
	if err != nil {
		b.Fatal(err)
	}
	benchGenerate(b, gen, generator.WithDepth(8), generator.WithWidth(16))
}

func BenchmarkResNetGenerate(b *testing.B) {
	gen, err := generator.NewResNet(10, core.Shape{32, 32, 3})
	if err != nil {
		b.Fatal(err)
	}
	benchGenerate(b, gen)
}

func BenchmarkDenseNetGenerate(b *testing.B) {
	gen, err := generator.NewDenseNet(10, core.Shape{32, 32, 3})
	if err != nil {
		b.Fatal(err)
	}
	benchGenerate(b, gen)
}

func BenchmarkMobileNetV2Generate(b *testing.B) {
	gen, err := generator.NewMobileNetV2(10, core.Shape{32, 32, 3})
	if err != nil {
		b.Fatal(err)
	}
	benchGenerate(b, gen)
}
