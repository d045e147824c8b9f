package plaintext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

func TestNew(t *testing.T) {
	reader := New()
	require.NotNil(t, reader)
	assert.Equal(t, "plaintext", reader.Name())
}

func TestCanHandle_Always(t *testing.T) {
	reader := New()

	inputs := [][]byte{
		nil,
		[]byte(""),
		[]byte("some file contents"),
		[]byte("<data><email><body>x</body></email></data>"),
		{0x00, 0xff, 0xfe},
	}
	for _, input := range inputs {
		assert.True(t, reader.CanHandle(domain.RawContent{Content: input}))
	}
}

func TestExtractBody_Unchanged(t *testing.T) {
	reader := New()

	tests := []string{
		"some file contents",
		"Hello world!\n",
		"",
		"多语言文本\n🚀",
	}
	for _, input := range tests {
		body, err := reader.ExtractBody(domain.RawContent{Content: []byte(input)})
		require.NoError(t, err)
		assert.Equal(t, input, body)
	}
}

func TestExtractBody_LargeContent(t *testing.T) {
	large := make([]byte, 1024*1024)
	for i := range large {
		large[i] = byte('A' + (i % 26))
	}

	body, err := New().ExtractBody(domain.RawContent{Content: large})
	require.NoError(t, err)
	assert.Len(t, body, 1024*1024)
}

func TestInterfaceCompliance(t *testing.T) {
	var _ driven.FormatReader = (*Reader)(nil)
}

func BenchmarkExtractBody(b *testing.B) {
	reader := New()
	content := domain.RawContent{Content: []byte("This is test content for benchmarking.")}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = reader.ExtractBody(content)
	}
}
