package analyzer

import (
	"bytes"
	"fmt"
	"testing"
)

func BenchmarkAnalyzeReader(b *testing.B) {
	var buf bytes.Buffer
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&buf, `{"timestamp":"2024-01-01T00:00:%02dZ","endpoint":"/api/v1/resource/%d","status_code":%d}`+"\n",
			i%60, i%50, 200+(i%4)*100)
	}
	data := buf.Bytes()
	a := New()

	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.AnalyzeReader(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValidate(b *testing.B) {
	v := NewValidator(Strict)
	doc, err := decodeLine([]byte(`{"timestamp":"2024-01-01T00:00:00Z","endpoint":"/api/users","status_code":404,"extra":[1,2,3]}`))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Validate(doc)
	}
}
