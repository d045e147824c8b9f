package services

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/logger"
	"github.com/custodia-labs/logmail/internal/readers/plaintext"
	"github.com/custodia-labs/logmail/internal/readers/xml"
)

func raw(s string) domain.RawContent {
	return domain.RawContent{Origin: "test", Content: []byte(s)}
}

func markupRegistry() *ReaderRegistry {
	return NewReaderRegistry(xml.New(), plaintext.New())
}

func TestNewReaderRegistry(t *testing.T) {
	registry := NewReaderRegistry()
	require.NotNil(t, registry)
	assert.Equal(t, 0, registry.Len())
	assert.Empty(t, registry.Names())
}

func TestReaderRegistry_RegisterKeepsOrder(t *testing.T) {
	registry := NewReaderRegistry()
	registry.Register(xml.New())
	registry.Register(plaintext.New())
	registry.Register(xml.New())

	assert.Equal(t, []string{"xml", "plaintext", "xml"}, registry.Names())
	assert.Equal(t, 3, registry.Len())
}

func TestReaderRegistry_InterfaceCompliance(t *testing.T) {
	var _ driven.ReaderRegistry = (*ReaderRegistry)(nil)
}

func TestReaderRegistry_Resolve_Markup(t *testing.T) {
	body := markupRegistry().Resolve(raw("<data><email><body>Hello World!</body></email></data>"))
	assert.Equal(t, "Hello World!", body)
}

func TestReaderRegistry_Resolve_PlainFallback(t *testing.T) {
	body := markupRegistry().Resolve(raw("plain unstructured text"))
	assert.Equal(t, "plain unstructured text", body)
}

func TestReaderRegistry_Resolve_MissingPath(t *testing.T) {
	body := markupRegistry().Resolve(raw("<root><other>x</other></root>"))
	assert.Equal(t, "", body)
}

func TestReaderRegistry_Resolve_EmptyRegistry(t *testing.T) {
	assert.Equal(t, "", NewReaderRegistry().Resolve(raw("anything")))
}

func TestReaderRegistry_Resolve_NoMatchReturnsEmpty(t *testing.T) {
	registry := NewReaderRegistry(&stubReader{name: "never", canHandle: never, body: "x"})
	assert.Equal(t, "", registry.Resolve(raw("anything")))
}

func TestReaderRegistry_Resolve_FallbackAlwaysMatches(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"<unclosed>",
		"<a/>",
		"{\"email\":{\"body\":\"x\"}}",
		"From: a@example.com\r\n\r\nhi",
		strings.Repeat("\x00\xff", 8),
	}

	for _, input := range inputs {
		fallback := &stubReader{name: "fallback", canHandle: always, body: "fallback-body"}
		registry := NewReaderRegistry(&stubReader{name: "never", canHandle: never}, fallback)

		body := registry.Resolve(raw(input))

		assert.Equal(t, "fallback-body", body, "input %q", input)
		assert.Equal(t, 1, fallback.extractCalls)
	}
}

func TestReaderRegistry_Resolve_SingleMatchEqualsExtract(t *testing.T) {
	xmlReader := xml.New()
	content := raw("<log><email><body>disk full</body></email></log>")

	expected, err := xmlReader.ExtractBody(content)
	require.NoError(t, err)

	registry := NewReaderRegistry(&stubReader{name: "never", canHandle: never}, xmlReader)
	assert.Equal(t, expected, registry.Resolve(content))
}

func TestReaderRegistry_Resolve_EarlierRegistrationWins(t *testing.T) {
	first := &stubReader{name: "first", canHandle: always, body: "first"}
	second := &stubReader{name: "second", canHandle: always, body: "second"}

	assert.Equal(t, "first", NewReaderRegistry(first, second).Resolve(raw("x")))
	assert.Equal(t, 0, second.canHandleCalls, "later readers must not be consulted")

	assert.Equal(t, "second", NewReaderRegistry(second, first).Resolve(raw("x")))
}

func TestReaderRegistry_Resolve_DuplicatesAllowed(t *testing.T) {
	reader := &stubReader{name: "dup", canHandle: always, body: "dup"}
	registry := NewReaderRegistry(reader, reader)

	assert.Equal(t, "dup", registry.Resolve(raw("x")))
	assert.Equal(t, 1, reader.extractCalls)
}

func TestReaderRegistry_Resolve_Idempotent(t *testing.T) {
	registry := markupRegistry()
	inputs := []string{
		"<data><email><body>Hello World!</body></email></data>",
		"plain unstructured text",
		"<root><other>x</other></root>",
	}

	for _, input := range inputs {
		first := registry.Resolve(raw(input))
		second := registry.Resolve(raw(input))
		assert.Equal(t, first, second, "input %q", input)
	}
	assert.Equal(t, []string{"xml", "plaintext"}, registry.Names())
}

func TestReaderRegistry_Resolve_ExtractFailureFallsBackToPlainText(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	broken := &stubReader{name: "broken", canHandle: always, err: domain.ErrParse}
	fallback := &stubReader{name: "fallback", canHandle: always, body: "unused"}
	registry := NewReaderRegistry(broken, fallback)

	body := registry.Resolve(raw("<half"))

	assert.Equal(t, "<half", body)
	assert.Equal(t, 0, fallback.canHandleCalls)
	assert.Contains(t, buf.String(), "[WARN] reader broken accepted test but failed to extract")
}

func TestReaderRegistry_Resolve_MarkupNeverReachesParseError(t *testing.T) {
	// Content the markup reader refuses never reaches its ExtractBody,
	// so the plain text reader sees it unchanged.
	inputs := []string{"blah blah blah", "<a><b></a>", "<a/><b/>", "text <a/>", "<a/> trailing"}

	for _, input := range inputs {
		assert.Equal(t, input, markupRegistry().Resolve(raw(input)), "input %q", input)
	}
}
