// Package backend resolves, once per process, which inference backend a run
// targets: the Groq cloud endpoint when a cloud credential is present in
// the supplied secret store, otherwise a local Ollama endpoint requiring no
// authentication. The resolved Config (mode, endpoint, credential, model
// catalog) is read-only afterwards and is passed down by parameter; no
// other component re-reads the environment to make routing decisions.
package backend
