package configs

// HTTP configures the trigger API started by the serve command.
type HTTP struct {
	// Port is the TCP port the API listens on on every interface.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
