package configs

// Payment holds configuration for the Midtrans payment gateway. The
// server key authenticates outbound API calls and is the secret used to
// verify webhook notification signatures.
type Payment struct {
	// ServerKey is the Midtrans server key. Required for checkout and
	// webhook verification.
	ServerKey string `env:"SERVER_KEY"`
	// Production selects the live Midtrans environment. Defaults to the
	// sandbox.
	Production bool `env:"PRODUCTION" envDefault:"false"`
}
