package grammar

import "testing"

func BenchmarkCompile(b *testing.B) {
	tmpl := shotTemplate()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := tmpl.Compile(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMatch(b *testing.B) {
	compiled, err := shotTemplate().Compile()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		compiled.Match("ABCD0123_v001.exr")
	}
}

func BenchmarkDiagnose(b *testing.B) {
	tmpl := shotTemplate()

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tmpl.Diagnose("ABCD123_v001.exr")
	}
}
