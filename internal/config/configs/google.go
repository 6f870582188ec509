package configs

// Google configures authentication for the Campaign Manager, Sheets and
// Drive clients. With no credentials file the clients fall back to
// Application Default Credentials.
type Google struct {
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	// Endpoint overrides the Campaign Manager API base URL. Used against
	// fakes in tests.
	Endpoint string `env:"DFA_ENDPOINT"`
}
