package company

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
)

// Credential is one stored company document. ValidityDate is kept for
// display only; expiry is not enforced during compliance checks.
type Credential struct {
	Type          string `json:"type"`
	ValidityDate  string `json:"validity_date"`
	FileReference string `json:"file_reference"`
}

// Vault stores company documents by name. The company adds and removes
// entries between evaluation runs; evaluations read a snapshot so a
// mid-batch edit cannot produce inconsistent compliance results.
type Vault struct {
	mu   sync.RWMutex
	docs map[string]Credential
}

func NewVault() *Vault {
	return &Vault{docs: make(map[string]Credential)}
}

// AddDocument inserts or overwrites a vault entry.
func (v *Vault) AddDocument(name, docType, validityDate, fileReference string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.docs[name] = Credential{
		Type:          docType,
		ValidityDate:  validityDate,
		FileReference: fileReference,
	}
}

func (v *Vault) Remove(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.docs, name)
}

func (v *Vault) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.docs)
}

// Names returns the stored document names in sorted order.
func (v *Vault) Names() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	names := make([]string, 0, len(v.docs))
	for name := range v.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot returns an immutable copy of the vault contents for use
// during one evaluation run.
func (v *Vault) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()

	docs := make(map[string]Credential, len(v.docs))
	for name, cred := range v.docs {
		docs[name] = cred
	}
	return Snapshot{docs: docs}
}

// LoadVaultFromFile reads a JSON vault file (document name to credential).
func LoadVaultFromFile(path string) (*Vault, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading vault file: %w", err)
	}

	var docs map[string]Credential
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("decoding vault file %q: %w", path, err)
	}

	vault := NewVault()
	for name, cred := range docs {
		vault.docs[name] = cred
	}
	return vault, nil
}

// Snapshot is a read-only view of vault contents at a point in time.
type Snapshot struct {
	docs map[string]Credential
}

func (s Snapshot) Has(name string) bool {
	_, ok := s.docs[name]
	return ok
}

func (s Snapshot) Get(name string) (Credential, bool) {
	cred, ok := s.docs[name]
	return cred, ok
}

func (s Snapshot) Len() int {
	return len(s.docs)
}
