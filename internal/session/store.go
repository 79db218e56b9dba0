package session

import (
	"sync"

	"github.com/vfg2006/campaign-manager-api/internal/config"
)

// Store centraliza o estado mutável da sessão do operador: o token de acesso
// recebido do redirect OAuth e os identificadores de conta de anúncio e página
// selecionados. A política de seleção é "selectFirst": as listagens gravam o
// primeiro item retornado. Última escrita vence.
type Store struct {
	mu sync.RWMutex

	accessToken string
	adAccountID string
	pageID      string
}

func NewStore(cfg config.Session) *Store {
	return &Store{
		adAccountID: cfg.DefaultAdAccountID,
		pageID:      cfg.DefaultPageID,
	}
}

// SaveToken grava o token de acesso. Qualquer string é aceita, inclusive
// vazia; não há validação de formato nem controle de expiração.
func (s *Store) SaveToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// Authenticated indica se há um token salvo.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken != ""
}

func (s *Store) SetAdAccountID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adAccountID = id
}

func (s *Store) AdAccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adAccountID
}

func (s *Store) SetPageID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageID = id
}

func (s *Store) PageID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pageID
}
