package roster

import (
	"testing"

	"github.com/calebsorensen/notewright/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPartner_CreatesFixedProgramSet(t *testing.T) {
	s := NewEmptyStore()
	partner, programs := s.AddPartner("Acme")

	assert.Equal(t, "Acme", partner.Name)
	assert.NotEmpty(t, partner.ID)

	// Exactly three programs, fixed names, fixed order, all owned by Acme.
	require.Len(t, programs, 3)
	for i, p := range programs {
		assert.Equal(t, PartnerProgramNames[i], p.Name)
		assert.Equal(t, partner.ID, p.PartnerID)
	}
	assert.Equal(t, programs, s.ProgramsForPartner(partner.ID))
}

func TestAddPartner_Deterministic(t *testing.T) {
	s := NewEmptyStore()
	_, first := s.AddPartner("One")
	_, second := s.AddPartner("Two")

	require.Len(t, s.Partners(), 2)
	require.Len(t, s.Programs(), 6)
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.NotEqual(t, first[i].PartnerID, second[i].PartnerID)
	}
}

func TestNewStore_SeedsReferenceData(t *testing.T) {
	s := NewStore()

	partners := s.Partners()
	require.Len(t, partners, 1)
	assert.Len(t, s.Programs(), 3)

	// Every seeded program resolves to an existing partner.
	for _, p := range s.Programs() {
		assert.NotNil(t, domain.FindPartner(partners, p.PartnerID))
	}
}

func TestClientLifecycle(t *testing.T) {
	s := NewEmptyStore()

	added, err := s.AddClient(domain.Client{Name: "Jordan Reyes"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	got, err := s.ClientByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Reyes", got.Name)

	got.Name = "Jordan A. Reyes"
	require.NoError(t, s.UpdateClient(got))
	got, err = s.ClientByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan A. Reyes", got.Name)

	require.NoError(t, s.RemoveClient(added.ID))
	_, err = s.ClientByID(added.ID)
	assert.Error(t, err)
}

func TestAddClient_Validation(t *testing.T) {
	s := NewEmptyStore()

	_, err := s.AddClient(domain.Client{})
	assert.Error(t, err, "name is required")

	bad := 11
	_, err = s.AddClient(domain.Client{Name: "X", Profile: &domain.Profile{Readiness: &bad}})
	assert.Error(t, err, "readiness must be 0-10")
}

func TestClientsByID_OrderAndUnknown(t *testing.T) {
	s := NewEmptyStore()
	a, err := s.AddClient(domain.Client{Name: "A"})
	require.NoError(t, err)
	b, err := s.AddClient(domain.Client{Name: "B"})
	require.NoError(t, err)

	clients, err := s.ClientsByID([]string{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "B", clients[0].Name)
	assert.Equal(t, "A", clients[1].Name)

	_, err = s.ClientsByID([]string{a.ID, "nope"})
	assert.Error(t, err)
}

func TestDocumentLifecycle(t *testing.T) {
	s := NewEmptyStore()

	d, err := s.AddDocument("Handbook", "content")
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	require.Len(t, s.Documents(), 1)

	_, err = s.AddDocument("", "content")
	assert.Error(t, err)

	require.NoError(t, s.RemoveDocument(d.ID))
	assert.Empty(t, s.Documents())
	assert.Error(t, s.RemoveDocument(d.ID))
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := NewEmptyStore()
	_, err := s.AddClient(domain.Client{Name: "A"})
	require.NoError(t, err)

	snap := s.Clients()
	snap[0].Name = "mutated"

	got := s.Clients()
	assert.Equal(t, "A", got[0].Name, "callers must not be able to mutate store state through snapshots")
}

func TestSnapshotsDeepCopyProfiles(t *testing.T) {
	s := NewEmptyStore()
	readiness := 5
	added, err := s.AddClient(domain.Client{Name: "A", Profile: &domain.Profile{
		Strengths: []string{"insightful"},
		Readiness: &readiness,
	}})
	require.NoError(t, err)

	snap := s.Clients()
	snap[0].Profile.Strengths[0] = "mutated"
	*snap[0].Profile.Readiness = 9
	snap[0].Profile.HistoryNotes = "mutated"

	got, err := s.ClientByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "insightful", got.Profile.Strengths[0], "profile slices must not alias store state")
	assert.Equal(t, 5, *got.Profile.Readiness, "readiness pointer must not alias store state")
	assert.Empty(t, got.Profile.HistoryNotes)

	// Lookups are copies too.
	got.Profile.Strengths[0] = "mutated again"
	fresh, err := s.ClientByID(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "insightful", fresh.Profile.Strengths[0])
}
