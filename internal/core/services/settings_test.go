package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/logmail/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/logmail/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)
	require.NotNil(t, settings)

	assert.Equal(t, "system@example.com", settings.Recipient.From)
	assert.Equal(t, []string{"admin@example.com"}, settings.Recipient.To)
	assert.Equal(t, "Log file", settings.Recipient.Subject)
	assert.Equal(t, "mail.example.com", settings.SMTP.Host)
	assert.Equal(t, 25, settings.SMTP.Port)
	assert.Equal(t, domain.EncryptionNone, settings.SMTP.Encryption)
	assert.Empty(t, settings.SMTP.Username)
	assert.Empty(t, settings.DataDir)
	assert.Empty(t, settings.Readers)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyMailFrom, "cron@example.org")
	_ = store.Set(KeyMailTo, []any{"ops@example.org", "dev@example.org"})
	_ = store.Set(KeySMTPHost, "smtp.example.org")
	_ = store.Set(KeySMTPPort, int64(587))
	_ = store.Set(KeySMTPUsername, "cron")
	_ = store.Set(KeySMTPEncryption, "STARTTLS")
	_ = store.Set(KeyReadersOrder, "xml, plaintext")
	_ = store.Set(KeyDataDir, "/srv/logmail")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, "cron@example.org", settings.Recipient.From)
	assert.Equal(t, []string{"ops@example.org", "dev@example.org"}, settings.Recipient.To)
	assert.Equal(t, "Log file", settings.Recipient.Subject)
	assert.Equal(t, "smtp.example.org", settings.SMTP.Host)
	assert.Equal(t, 587, settings.SMTP.Port)
	assert.Equal(t, "cron", settings.SMTP.Username)
	assert.Equal(t, domain.EncryptionSTARTTLS, settings.SMTP.Encryption)
	assert.Equal(t, []string{"xml", "plaintext"}, settings.Readers)
	assert.Equal(t, "/srv/logmail", settings.DataDir)
}

func TestSettingsService_Get_InvalidEncryptionFallsBack(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeySMTPEncryption, "rot13")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.EncryptionNone, settings.SMTP.Encryption)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultSettings()
	settings.Recipient.To = []string{"a@example.com", "b@example.com"}
	settings.SMTP.Port = 465
	settings.SMTP.Encryption = domain.EncryptionSSLTLS
	settings.SMTP.Password = "secret"
	settings.Readers = []string{"json", "plaintext"}

	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_EmptyPasswordNotWritten(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultSettings()
	require.NoError(t, service.Save(&settings))

	_, ok := store.Get(KeySMTPPassword)
	assert.False(t, ok)
}

func TestSettingsService_Save_Nil(t *testing.T) {
	assert.ErrorIs(t, NewSettingsService(memory.NewConfigStore()).Save(nil), domain.ErrInvalidInput)
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr bool
	}{
		{"port", KeySMTPPort, "587", 587, false},
		{"port not a number", KeySMTPPort, "smtp", nil, true},
		{"port out of range", KeySMTPPort, "70000", nil, true},
		{"encryption", KeySMTPEncryption, "ssl_tls", "ssl_tls", false},
		{"bad encryption", KeySMTPEncryption, "tls1.0", nil, true},
		{"recipients", KeyMailTo, "a@example.com, b@example.com", []string{"a@example.com", "b@example.com"}, false},
		{"reader order", KeyReadersOrder, "xml,plaintext", []string{"xml", "plaintext"}, false},
		{"subject", KeyMailSubject, "Nightly log", "Nightly log", false},
		{"unknown key", "search.mode", "hybrid", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			err := NewSettingsService(store).SetValue(tt.key, tt.value)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				_, ok := store.Get(tt.key)
				assert.False(t, ok)
				return
			}

			require.NoError(t, err)
			val, ok := store.Get(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, val)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	keys := service.Keys()

	assert.Contains(t, keys, KeySMTPHost)
	assert.Contains(t, keys, KeyReadersOrder)
	assert.Len(t, keys, 10)

	keys[0] = "changed"
	assert.Equal(t, KeyMailFrom, service.Keys()[0])
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	valid := domain.DefaultSettings()
	require.NoError(t, service.Validate(&valid))

	tests := []struct {
		name   string
		mutate func(*domain.Settings)
	}{
		{"empty from", func(s *domain.Settings) { s.Recipient.From = "" }},
		{"no recipients", func(s *domain.Settings) { s.Recipient.To = nil }},
		{"empty host", func(s *domain.Settings) { s.SMTP.Host = "" }},
		{"zero port", func(s *domain.Settings) { s.SMTP.Port = 0 }},
		{"unknown encryption", func(s *domain.Settings) { s.SMTP.Encryption = "tls" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := domain.DefaultSettings()
			tt.mutate(&settings)
			assert.ErrorIs(t, service.Validate(&settings), domain.ErrInvalidInput)
		})
	}

	assert.ErrorIs(t, service.Validate(nil), domain.ErrInvalidInput)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultSettings(), service.GetDefaults())
}
