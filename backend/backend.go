package backend

import (
	"fmt"
	"os"
	"strings"
)

// Mode discriminates where inference runs.
type Mode string

const (
	// ModeLocal targets an on-machine Ollama endpoint.
	ModeLocal Mode = "local"
	// ModeCloud targets the Groq cloud endpoint.
	ModeCloud Mode = "cloud"
)

const (
	// CloudSecretKey is the secret store key whose presence selects cloud
	// mode. Its value is the cloud credential.
	CloudSecretKey = "GROQ_API_KEY"

	// LocalCredentialSentinel stands in for a credential when the local
	// endpoint requires none; some transports refuse an empty key.
	LocalCredentialSentinel = "NA"

	// CredentialEnvKey is the process-environment variable through which
	// transports that discover credentials ambiently find the resolved
	// credential.
	CredentialEnvKey = "OPENAI_API_KEY"

	// DefaultLocalEndpoint is the OpenAI-compatible base URL of a default
	// Ollama install.
	DefaultLocalEndpoint = "http://localhost:11434/v1"

	// DefaultCloudEndpoint is Groq's OpenAI-compatible base URL.
	DefaultCloudEndpoint = "https://api.groq.com/openai/v1"
)

// SecretStore is the external key/value secret collaborator queried for the
// cloud credential.
type SecretStore interface {
	// Get returns the secret under key and whether it was present.
	Get(key string) (string, bool)
}

// MapSecretStore is an in-memory SecretStore, used in tests and by hosts
// that load secrets themselves.
type MapSecretStore map[string]string

// Get implements SecretStore.
func (m MapSecretStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// EnvSecretStore reads secrets from the process environment.
type EnvSecretStore struct{}

// Get implements SecretStore. Empty values count as absent.
func (EnvSecretStore) Get(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Config is the resolved backend: exactly one mode per process run, its
// endpoint and credential, and the model catalog callers may select from.
// Read-only after Resolve; share freely without synchronization.
type Config struct {
	Mode       Mode
	Endpoint   string
	Credential string
	// Catalog maps provider-qualified model identifiers to display labels.
	Catalog map[string]string
}

// HasModel reports whether id belongs to the active catalog.
func (c Config) HasModel(id string) bool {
	_, ok := c.Catalog[id]
	return ok
}

// Label returns the display label for id, or id itself when unknown.
func (c Config) Label(id string) string {
	if label, ok := c.Catalog[id]; ok {
		return label
	}
	return id
}

// CloudCatalog returns the fixed set of cloud-hosted model identifiers.
func CloudCatalog() map[string]string {
	return map[string]string{
		"groq/deepseek-r1-distill-llama-70b": "Thinking (DeepSeek R1 - Cloud)",
		"groq/llama-3.3-70b-versatile":       "Fast (Llama 3.3 - Cloud)",
		"groq/mixtral-8x7b-32768":            "Pro (Mixtral - Cloud)",
	}
}

// LocalCatalog returns the fixed set of locally-pulled model identifiers.
func LocalCatalog() map[string]string {
	return map[string]string{
		"ollama/deepseek-r1:8b": "Thinking (DeepSeek R1 - Local)",
		"ollama/llama3.2":       "Fast (Llama 3.2 - Local)",
		"ollama/mistral":        "Pro (Mistral - Local)",
	}
}

// SplitModelID separates the provider prefix from a catalog identifier.
// "groq/llama-3.3-70b-versatile" yields ("groq", "llama-3.3-70b-versatile");
// an unprefixed id yields an empty provider.
func SplitModelID(id string) (provider, name string) {
	if before, after, found := strings.Cut(id, "/"); found {
		return before, after
	}
	return "", id
}

// ResolverOptions override endpoints and the secret key consulted during
// resolution, typically wired from the settings file.
type ResolverOptions struct {
	LocalEndpoint string
	CloudEndpoint string
	SecretKey     string
}

// Resolve inspects the secret store and decides the backend for this
// process run. It is called exactly once at startup; the decision is never
// re-evaluated mid-run. In cloud mode the credential is additionally
// exported under CredentialEnvKey so transports that read credentials from
// the environment find it.
func Resolve(store SecretStore, optFns ...func(o *ResolverOptions)) (Config, error) {
	opts := ResolverOptions{
		LocalEndpoint: DefaultLocalEndpoint,
		CloudEndpoint: DefaultCloudEndpoint,
		SecretKey:     CloudSecretKey,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if credential, ok := store.Get(opts.SecretKey); ok {
		if err := os.Setenv(CredentialEnvKey, credential); err != nil {
			return Config{}, fmt.Errorf("export cloud credential: %w", err)
		}
		return Config{
			Mode:       ModeCloud,
			Endpoint:   opts.CloudEndpoint,
			Credential: credential,
			Catalog:    CloudCatalog(),
		}, nil
	}

	return Config{
		Mode:       ModeLocal,
		Endpoint:   opts.LocalEndpoint,
		Credential: LocalCredentialSentinel,
		Catalog:    LocalCatalog(),
	}, nil
}
