package domain

// GenerationRecord remembers the fingerprint of an output the generator last wrote.
type GenerationRecord struct {
	Path   string `json:"path,omitzero"`
	Module string `json:"module,omitzero"`
	Hash   string `json:"hash,omitzero"`
}
