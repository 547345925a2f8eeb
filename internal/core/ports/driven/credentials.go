package driven

// CredentialSource supplies named ambient credentials (api_key, base_url).
// It is passed explicitly into the workflow at construction time rather than
// read from a global.
type CredentialSource interface {
	// Get returns the named credential and whether it is set non-empty.
	Get(name string) (string, bool)
}

// Credential names used by the knowledge-base adapter.
const (
	CredentialAPIKey  = "api_key"
	CredentialBaseURL = "base_url"
)
