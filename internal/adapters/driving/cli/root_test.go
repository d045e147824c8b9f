package cli

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/logmail/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/logmail/internal/core/domain"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "logmail", rootCmd.Use)
}

func TestRootCmd_GlobalFlags(t *testing.T) {
	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)

	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("data-dir"))
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"send", "log", "history", "watch", "readers", "config", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("")
	assert.Equal(t, original, version)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)
}

// realDirs returns the global flags pointing the real service builder at
// temporary config and data directories.
func realDirs(t *testing.T) []string {
	t.Helper()
	t.Cleanup(resetFlags)
	return []string{"--config-dir", t.TempDir(), "--data-dir", t.TempDir()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func closedPort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestSend_DryRunExtractsXML(t *testing.T) {
	dirs := realDirs(t)
	path := writeFile(t, "app.log", "<data><email><body>Hello world!</body></email></data>")

	out, err := execute(t, append([]string{"send", "--dry-run", path}, dirs...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "From: system@example.com")
	assert.Contains(t, out, "To: admin@example.com")
	assert.Contains(t, out, "Subject: Log file")
	assert.Contains(t, out, "Sent email with body: Hello world!")
}

func TestSend_DryRunPlainText(t *testing.T) {
	dirs := realDirs(t)
	path := writeFile(t, "app.log", "disk almost full")

	out, err := execute(t, append([]string{"send", "--dry-run", "--subject", "Alert", path}, dirs...)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Subject: Alert")
	assert.Contains(t, out, "Sent email with body: disk almost full")
}

func TestSend_StableFailureMessages(t *testing.T) {
	t.Run("no origin", func(t *testing.T) {
		dirs := realDirs(t)

		_, err := execute(t, append([]string{"send", "--dry-run"}, dirs...)...)

		require.Error(t, err)
		assert.Equal(t, "You must specify a file to send.", err.Error())
	})

	t.Run("no origin with unusable data dir", func(t *testing.T) {
		dirs := realDirs(t)
		blocker := writeFile(t, "not-a-dir", "x")
		dirs[3] = filepath.Join(blocker, "data")

		_, err := execute(t, append([]string{"send"}, dirs...)...)

		require.Error(t, err)
		assert.Equal(t, "You must specify a file to send.", err.Error())
		assert.NoDirExists(t, dirs[3])
	})

	t.Run("missing file", func(t *testing.T) {
		dirs := realDirs(t)
		missing := filepath.Join(t.TempDir(), "absent.log")

		_, err := execute(t, append([]string{"send", "--dry-run", missing}, dirs...)...)

		require.Error(t, err)
		assert.Equal(t, "Couldn't find the specified file.", err.Error())
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	t.Run("directory", func(t *testing.T) {
		dirs := realDirs(t)

		_, err := execute(t, append([]string{"send", "--dry-run", t.TempDir()}, dirs...)...)

		require.Error(t, err)
		assert.Equal(t, "Couldn't find the specified file.", err.Error())
	})

	t.Run("smtp unreachable", func(t *testing.T) {
		dirs := realDirs(t)
		t.Setenv("LOGMAIL_SMTP_HOST", "127.0.0.1")
		t.Setenv("LOGMAIL_SMTP_PORT", strconv.Itoa(closedPort(t)))
		path := writeFile(t, "app.log", "Hello world!")

		_, err := execute(t, append([]string{"send", path}, dirs...)...)

		require.Error(t, err)
		assert.Equal(t, "Couldn't connect to the SMTP server.", err.Error())
		assert.ErrorIs(t, err, domain.ErrDeliveryUnavailable)

		out, err := execute(t, append([]string{"history"}, dirs...)...)
		require.NoError(t, err)
		assert.Contains(t, out, "failed")
	})
}

func TestSend_ImportedLogFromDatabase(t *testing.T) {
	dirs := realDirs(t)
	dataDir := dirs[3]
	path := writeFile(t, "app.json", `{"email": {"body": "stored body"}}`)

	out, err := execute(t, append([]string{"log", "import", path}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported "+path)

	out, err = execute(t, append([]string{"log", "list"}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "stored body")

	origin := "sqlite://" + filepath.Join(dataDir, sqlite.DatabaseFile)
	out, err = execute(t, append([]string{"send", "--dry-run", origin}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Sent email with body: stored body")

	out, err = execute(t, append([]string{"history"}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "dry-run")
	assert.Contains(t, out, origin)
}

func TestConfig_FileThenEnvPrecedence(t *testing.T) {
	dirs := realDirs(t)

	_, err := execute(t, append([]string{"config", "set", "smtp.host", "smtp.internal"}, dirs...)...)
	require.NoError(t, err)
	_, err = execute(t, append([]string{"config", "set", "mail.subject", "From file"}, dirs...)...)
	require.NoError(t, err)

	t.Setenv("LOGMAIL_SUBJECT", "From env")

	out, err := execute(t, append([]string{"config", "show"}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Host: smtp.internal")
	assert.Contains(t, out, "Subject: From env")
	assert.Contains(t, out, "Data Dir: "+dirs[3])
}

func TestReaders_ConfiguredInFile(t *testing.T) {
	dirs := realDirs(t)

	_, err := execute(t, append([]string{"config", "set", "readers.order", "json,xml"}, dirs...)...)
	require.NoError(t, err)

	out, err := execute(t, append([]string{"readers"}, dirs...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "1. json\n2. xml\n3. plaintext\n")
}
