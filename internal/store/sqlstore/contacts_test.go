package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courier-im/courier/internal/apperr"
)

func TestAddContactSymmetric(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice", "t1")
	bob := mustCreateUser(t, s, "bob", "t2")

	require.NoError(t, s.AddContact(alice.ID, bob.ID))

	aliceContacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	require.Len(t, aliceContacts, 1)
	assert.Equal(t, "bob", aliceContacts[0].Username)

	bobContacts, err := s.ListContacts(bob.ID)
	require.NoError(t, err)
	require.Len(t, bobContacts, 1)
	assert.Equal(t, "alice", bobContacts[0].Username)
}

func TestAddContactDuplicate(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice", "t1")
	bob := mustCreateUser(t, s, "bob", "t2")

	require.NoError(t, s.AddContact(alice.ID, bob.ID))

	err := s.AddContact(alice.ID, bob.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)

	// The graph still holds exactly one edge per direction.
	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM contacts").Scan(&count))
	assert.Equal(t, 2, count)
}

func TestAddContactReverseEdgeConflict(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice", "t1")
	bob := mustCreateUser(t, s, "bob", "t2")

	require.NoError(t, s.AddContact(alice.ID, bob.ID))

	// Adding from the other side hits the existing reverse edge.
	err := s.AddContact(bob.ID, alice.ID)
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestListContactsSkipsDanglingEdges(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice", "t1")
	bob := mustCreateUser(t, s, "bob", "t2")
	carol := mustCreateUser(t, s, "carol", "t3")

	require.NoError(t, s.AddContact(alice.ID, bob.ID))
	require.NoError(t, s.AddContact(alice.ID, carol.ID))

	// Simulate a target that no longer resolves.
	_, err := s.db.Exec("DELETE FROM users WHERE id = ?", carol.ID)
	require.NoError(t, err)

	contacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "bob", contacts[0].Username)
}

func TestListContactsEmpty(t *testing.T) {
	s := newTestStore(t)
	alice := mustCreateUser(t, s, "alice", "t1")

	contacts, err := s.ListContacts(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
