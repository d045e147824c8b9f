package domain

// Encryption modes understood by the SMTP dispatcher.
const (
	EncryptionNone     = "none"
	EncryptionSTARTTLS = "starttls"
	EncryptionSSLTLS   = "ssl_tls"
)

// Default SMTP endpoint.
const (
	DefaultSMTPHost = "mail.example.com"
	DefaultSMTPPort = 25
)

// SMTPSettings holds connection parameters for the SMTP dispatcher.
type SMTPSettings struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Encryption string
}

// Settings is the resolved application configuration.
type Settings struct {
	Recipient Recipient
	SMTP      SMTPSettings

	// DataDir holds the log database. Empty means the default location.
	DataDir string

	// Readers is the reader registration order. Empty means the default order.
	Readers []string
}

// DefaultSettings returns settings with built-in defaults applied.
func DefaultSettings() Settings {
	return Settings{
		Recipient: DefaultRecipient(),
		SMTP: SMTPSettings{
			Host:       DefaultSMTPHost,
			Port:       DefaultSMTPPort,
			Encryption: EncryptionNone,
		},
	}
}

// ValidEncryption reports whether mode is a known encryption mode.
func ValidEncryption(mode string) bool {
	switch mode {
	case EncryptionNone, EncryptionSTARTTLS, EncryptionSSLTLS:
		return true
	default:
		return false
	}
}
