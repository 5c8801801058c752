package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifadigital/raffle/internal/repository"
	"github.com/rifadigital/raffle/internal/session"
)

func TestManager_Lifecycle(t *testing.T) {
	mgr := session.NewManager(repository.NewMemoryStore(), 0)

	s, err := mgr.Create("JEYNY")
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)
	require.NotNil(t, s.Cache)

	got, ok := mgr.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	mgr.Drop(s.ID)
	_, ok = mgr.Get(s.ID)
	assert.False(t, ok, "a dropped session is gone for good")
}

func TestManager_SessionsAreIndependent(t *testing.T) {
	mgr := session.NewManager(repository.NewMemoryStore(), 0)

	a, err := mgr.Create("JEYNY")
	require.NoError(t, err)
	b, err := mgr.Create("JEYNY")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a.Cache, b.Cache, "each session owns its own ledger cache")
}

func TestManager_ExpiredSessionsAreReclaimed(t *testing.T) {
	mgr := session.NewManager(repository.NewMemoryStore(), time.Minute)

	live, err := mgr.Create("JEYNY")
	require.NoError(t, err)
	stale, err := mgr.Create("JAIME")
	require.NoError(t, err)
	stale.CreatedAt = time.Now().Add(-2 * time.Minute)

	// Lookup refuses the stale session outright.
	_, ok := mgr.Get(stale.ID)
	assert.False(t, ok, "an expired session must not resolve")

	// The sweep reclaims sessions nobody looks up anymore.
	orphan, err := mgr.Create("INA")
	require.NoError(t, err)
	orphan.CreatedAt = time.Now().Add(-time.Hour)
	assert.Equal(t, 1, mgr.Sweep())

	_, ok = mgr.Get(live.ID)
	assert.True(t, ok, "a fresh session survives the sweep")
}
