package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Defaults(t *testing.T) {
	store := NewStore()

	snap := store.Read()
	assert.False(t, snap.LoggedIn)
	assert.Empty(t, snap.Username)
}

func TestStore_SetAuthenticated(t *testing.T) {
	store := NewStore()

	gen := store.Begin()
	applied := store.SetAuthenticated(gen, "jane@mail.com")

	require.True(t, applied)
	snap := store.Read()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "jane@mail.com", snap.Username)
}

func TestStore_SetUnauthenticated_ClearsUsername(t *testing.T) {
	store := NewStore()

	gen := store.Begin()
	require.True(t, store.SetAuthenticated(gen, "jane"))

	gen = store.Begin()
	require.True(t, store.SetUnauthenticated(gen))

	snap := store.Read()
	assert.False(t, snap.LoggedIn)
	assert.Empty(t, snap.Username)
}

// Username must never survive a logout; LoggedIn=true always carries one.
func TestStore_Invariant_UsernameImpliesLoggedIn(t *testing.T) {
	store := NewStore()

	require.True(t, store.SetAuthenticated(store.Begin(), "alice"))
	require.True(t, store.SetUnauthenticated(store.Begin()))
	require.True(t, store.SetAuthenticated(store.Begin(), "bob"))

	snap := store.Read()
	if snap.Username != "" {
		assert.True(t, snap.LoggedIn)
	}
}

func TestStore_Observers_NotifiedInSubscriptionOrder(t *testing.T) {
	store := NewStore()

	var order []string
	store.Subscribe(func(s Session) { order = append(order, "first") })
	store.Subscribe(func(s Session) { order = append(order, "second") })

	require.True(t, store.SetAuthenticated(store.Begin(), "jane"))

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestStore_Observers_ReceiveSnapshot(t *testing.T) {
	store := NewStore()

	var seen []Session
	store.Subscribe(func(s Session) { seen = append(seen, s) })

	require.True(t, store.SetAuthenticated(store.Begin(), "jane"))
	require.True(t, store.SetUnauthenticated(store.Begin()))

	require.Len(t, seen, 2)
	assert.Equal(t, Session{LoggedIn: true, Username: "jane"}, seen[0])
	assert.Equal(t, Session{}, seen[1])
}

// A response that resolves after a newer request was issued must not win.
func TestStore_StaleGenerationDiscarded(t *testing.T) {
	store := NewStore()

	genLogout := store.Begin()
	genLogin := store.Begin()

	// Login resolves first, then the older logout response arrives.
	require.True(t, store.SetAuthenticated(genLogin, "jane"))
	applied := store.SetUnauthenticated(genLogout)

	assert.False(t, applied)
	snap := store.Read()
	assert.True(t, snap.LoggedIn)
	assert.Equal(t, "jane", snap.Username)
}

func TestStore_StaleUpdateDoesNotNotify(t *testing.T) {
	store := NewStore()

	notified := 0
	store.Subscribe(func(Session) { notified++ })

	genOld := store.Begin()
	genNew := store.Begin()
	require.True(t, store.SetAuthenticated(genNew, "jane"))
	require.False(t, store.SetUnauthenticated(genOld))

	assert.Equal(t, 1, notified)
}
