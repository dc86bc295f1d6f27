package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
//
// Accounts are never retyped or deleted: the service exposes no update or
// remove operations, so an account referenced by posted entries keeps its
// type and normal balance for the life of the books.
type Service struct {
	accounts []model.Account
	byID     map[string]model.Account
	byName   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	s := &Service{
		byID:   make(map[string]model.Account, len(accounts)),
		byName: make(map[string]model.Account, len(accounts)),
	}
	for _, a := range accounts {
		s.accounts = append(s.accounts, a)
		s.byID[a.ID] = a
		s.byName[a.Name] = a
	}
	return s
}

// Load reads chart-of-accounts.csv from a books root and returns a Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in catalog order.
func (s *Service) All() []model.Account {
	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// Get returns an account by ID.
func (s *Service) Get(id string) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// GetByName returns an account by display name.
func (s *Service) GetByName(name string) (model.Account, bool) {
	a, ok := s.byName[name]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// ByType returns all accounts of the given type, in catalog order.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Add registers a new account. IDs and names must be unique, the type and
// normal balance must be valid enumeration values.
func (s *Service) Add(a model.Account) error {
	if a.ID == "" {
		return fmt.Errorf("account ID is required")
	}
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	if !a.Type.Valid() {
		return fmt.Errorf("invalid account type %q", a.Type)
	}
	if !a.NormalBalance.Valid() {
		return fmt.Errorf("invalid normal balance %q", a.NormalBalance)
	}
	if _, ok := s.byID[a.ID]; ok {
		return fmt.Errorf("duplicate account ID %q", a.ID)
	}
	if _, ok := s.byName[a.Name]; ok {
		return fmt.Errorf("duplicate account name %q", a.Name)
	}

	s.accounts = append(s.accounts, a)
	s.byID[a.ID] = a
	s.byName[a.Name] = a
	return nil
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
