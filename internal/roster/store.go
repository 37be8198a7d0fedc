// Package roster holds the transient application state: clients, partners,
// programs, and reference documents. Everything lives in memory for the
// current session only. A single active editor is assumed; mutation is
// synchronous and unguarded.
package roster

import (
	"fmt"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/google/uuid"
)

// PartnerProgramNames is the fixed, ordered set of programs created for
// every new partner. Adding a partner always yields exactly these three,
// in this order.
var PartnerProgramNames = [3]string{
	"Outpatient Counseling",
	"Intensive Case Management",
	"Peer Recovery Support",
}

// Store is the single owner of mutable roster state. The formatter, builder,
// and generation layers only ever see read-only snapshots taken from it.
type Store struct {
	clients   []domain.Client
	partners  []domain.Partner
	programs  []domain.Program
	documents []domain.Document
}

// NewStore returns a Store seeded with the startup reference data: one
// house partner and its program set.
func NewStore() *Store {
	s := &Store{}
	s.AddPartner("Notewright Health")
	return s
}

// NewEmptyStore returns a Store with no seeded data. Used by tests.
func NewEmptyStore() *Store {
	return &Store{}
}

// AddPartner creates a partner and, as a documented side effect, its fixed
// set of three programs. Returns the partner and the new programs in
// creation order.
func (s *Store) AddPartner(name string) (domain.Partner, []domain.Program) {
	partner := domain.Partner{ID: uuid.NewString(), Name: name}
	s.partners = append(s.partners, partner)

	created := make([]domain.Program, 0, len(PartnerProgramNames))
	for _, progName := range PartnerProgramNames {
		prog := domain.Program{
			ID:        uuid.NewString(),
			Name:      progName,
			PartnerID: partner.ID,
		}
		s.programs = append(s.programs, prog)
		created = append(created, prog)
	}
	return partner, created
}

// AddClient adds a client to the roster and returns it with an assigned ID.
func (s *Store) AddClient(c domain.Client) (domain.Client, error) {
	if c.Name == "" {
		return domain.Client{}, fmt.Errorf("client name is required")
	}
	if c.Profile != nil {
		if err := c.Profile.ValidateReadiness(); err != nil {
			return domain.Client{}, err
		}
	}
	c.ID = uuid.NewString()
	s.clients = append(s.clients, c)
	return c, nil
}

// UpdateClient replaces the stored client with the same ID.
func (s *Store) UpdateClient(c domain.Client) error {
	if c.Profile != nil {
		if err := c.Profile.ValidateReadiness(); err != nil {
			return err
		}
	}
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = c
			return nil
		}
	}
	return fmt.Errorf("client %q not found", c.ID)
}

// RemoveClient deletes a client from the roster.
func (s *Store) RemoveClient(id string) error {
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("client %q not found", id)
}

// ClientByID returns a deep copy of the client with the given ID, or an error.
func (s *Store) ClientByID(id string) (domain.Client, error) {
	for _, c := range s.clients {
		if c.ID == id {
			return c.Clone(), nil
		}
	}
	return domain.Client{}, fmt.Errorf("client %q not found", id)
}

// ClientsByID resolves a list of IDs in order. Unknown IDs fail the lookup;
// generation requests must reference real roster entries.
func (s *Store) ClientsByID(ids []string) ([]domain.Client, error) {
	clients := make([]domain.Client, 0, len(ids))
	for _, id := range ids {
		c, err := s.ClientByID(id)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

// AddDocument stores a reference document.
func (s *Store) AddDocument(title, content string) (domain.Document, error) {
	if title == "" {
		return domain.Document{}, fmt.Errorf("document title is required")
	}
	d := domain.Document{ID: uuid.NewString(), Title: title, Content: content}
	s.documents = append(s.documents, d)
	return d, nil
}

// RemoveDocument deletes a reference document.
func (s *Store) RemoveDocument(id string) error {
	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("document %q not found", id)
}

// Clients returns a deep copy of the client list in insertion order.
// Profiles are cloned as well; snapshots never alias store state.
func (s *Store) Clients() []domain.Client {
	out := make([]domain.Client, len(s.clients))
	for i, c := range s.clients {
		out[i] = c.Clone()
	}
	return out
}

// Partners returns a copy of the partner list in insertion order.
func (s *Store) Partners() []domain.Partner {
	return append([]domain.Partner(nil), s.partners...)
}

// Programs returns a copy of the program list in insertion order.
func (s *Store) Programs() []domain.Program {
	return append([]domain.Program(nil), s.programs...)
}

// ProgramsForPartner returns the programs owned by a partner, in creation order.
func (s *Store) ProgramsForPartner(partnerID string) []domain.Program {
	var out []domain.Program
	for _, p := range s.programs {
		if p.PartnerID == partnerID {
			out = append(out, p)
		}
	}
	return out
}

// Documents returns a copy of the document list in insertion order.
func (s *Store) Documents() []domain.Document {
	return append([]domain.Document(nil), s.documents...)
}
