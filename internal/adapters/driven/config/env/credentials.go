// Package env supplies credentials from environment variables, layered over
// the persistent config store. Environment values win so one-off runs can
// override whatever `kbridge auth set` stored.
package env

import (
	"os"
	"strings"

	"github.com/tidemark-labs/kbridge/internal/core/ports/driven"
)

// Prefix is prepended to upper-cased credential names, so "api_key"
// resolves from KBRIDGE_API_KEY.
const Prefix = "KBRIDGE_"

// configKeyPrefix namespaces credentials inside the config store.
const configKeyPrefix = "dify."

// Ensure Credentials implements the interface.
var _ driven.CredentialSource = (*Credentials)(nil)

// Credentials resolves credentials from the environment first, then from an
// optional config store.
type Credentials struct {
	store driven.ConfigStore
}

// NewCredentials creates a credential source backed by the environment and
// the given config store. The store may be nil.
func NewCredentials(store driven.ConfigStore) *Credentials {
	return &Credentials{store: store}
}

// Get returns the named credential and whether it is set non-empty.
func (c *Credentials) Get(name string) (string, bool) {
	if v := os.Getenv(Prefix + strings.ToUpper(name)); v != "" {
		return v, true
	}
	if c.store != nil {
		if v := c.store.GetString(configKeyPrefix + name); v != "" {
			return v, true
		}
	}
	return "", false
}
