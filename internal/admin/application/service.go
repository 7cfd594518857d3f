package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	admindomain "github.com/forsage-shop/storefront/internal/admin/domain"
	catalogapp "github.com/forsage-shop/storefront/internal/catalog/application"
	catalog "github.com/forsage-shop/storefront/internal/catalog/domain"
)

const (
	pinSettingKey = "admin_pin"

	// Used when the settings lookup misses or the store is unreachable.
	// Deliberately a plain literal: the admin view is a convenience screen,
	// not a security boundary.
	fallbackPIN = "1234"
)

// Service gates the admin screens behind a PIN and owns the draft catalog the
// admin edits. The draft starts as a copy of the live catalog and never
// writes back; redeployment happens by pasting the JSON export.
type Service struct {
	log      *slog.Logger
	settings SettingsStore
	catalog  *catalogapp.Service

	mu     sync.Mutex
	draft  admindomain.Draft
	tokens map[string]struct{}
}

func NewService(log *slog.Logger, settings SettingsStore, catalog *catalogapp.Service) *Service {
	return &Service{
		log:      log,
		settings: settings,
		catalog:  catalog,
		draft:    admindomain.NewDraft(catalog.Products()),
		tokens:   make(map[string]struct{}),
	}
}

// VerifyPIN checks the trimmed input against the stored PIN and mints an
// admin token on success. Lookup failures fall back to the default PIN
// instead of refusing entry.
func (s *Service) VerifyPIN(ctx context.Context, input string) (string, bool) {
	stored, err := s.settings.Get(ctx, pinSettingKey)
	if err != nil {
		s.log.Error("settings lookup failed, using fallback pin", "err", err)
		stored = fallbackPIN
	}
	if stored == "" {
		stored = fallbackPIN
	}

	if strings.TrimSpace(input) != stored {
		return "", false
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	s.log.Info("admin session opened")
	return token, true
}

func (s *Service) Authorized(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Products returns the current draft in order.
func (s *Service) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Product, len(s.draft.Products))
	copy(out, s.draft.Products)
	return out
}

func (s *Service) AddProduct() catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, p := s.draft.Add()
	s.draft = next
	return p
}

func (s *Service) EditProduct(id string, edits ...admindomain.Edit) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.draft.Apply(id, edits...)
	s.draft = next
	return ok
}

func (s *Service) RemoveProduct(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.draft.Remove(id)
}

// ResetDraft discards all edits and re-copies the live catalog.
func (s *Service) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = admindomain.NewDraft(s.catalog.Products())
}

func (s *Service) ExportJSON() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.ExportJSON()
}
