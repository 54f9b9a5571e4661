package configs

// Admin configures the administrative capability for the campaign
// verification endpoint. Identity issuance lives with the external
// auth provider; this token is the pre-validated privilege signal the
// ledger trusts.
type Admin struct {
	// Token is the shared secret presented in the X-Admin-Token header.
	// An empty token disables the verification endpoint.
	Token string `env:"TOKEN"`
}
