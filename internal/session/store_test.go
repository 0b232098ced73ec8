// ABOUTME: Tests for the session store
// ABOUTME: Covers state transitions, listener notification, and write generations

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liubkkkko/taskManager/internal/api"
)

func TestNewStoreStartsLoading(t *testing.T) {
	s := NewStore()

	state := s.Get()
	assert.True(t, state.Loading)
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.Username)
}

func TestLoginRecordsNickname(t *testing.T) {
	s := NewStore()

	s.Login(&api.Author{Nickname: "ivan"})

	state := s.Get()
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ivan", state.Username)
	// Only the bootstrap ends the loading phase
	assert.True(t, state.Loading)
}

func TestLoginNormalizesUserArgument(t *testing.T) {
	tests := []struct {
		name string
		user any
		want string
	}{
		{"plain string", "olha", "olha"},
		{"author value", api.Author{Nickname: "petro"}, "petro"},
		{"nil pointer", (*api.Author)(nil), ""},
		{"unsupported type", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.Login(tt.user)
			assert.Equal(t, tt.want, s.Get().Username)
		})
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	s := NewStore()
	s.resolve(true, "ivan")

	s.Logout()

	state := s.Get()
	assert.False(t, state.Authenticated)
	assert.Empty(t, state.Username)
	assert.False(t, state.Loading)
}

func TestLogoutEndsLoadingPhase(t *testing.T) {
	s := NewStore()

	s.Logout()

	assert.False(t, s.Get().Loading, "explicit sign-out must never leave the app indeterminate")
}

func TestSubscribeNotifiesOnEveryWrite(t *testing.T) {
	s := NewStore()

	var seen []State
	s.Subscribe(func(st State) { seen = append(seen, st) })

	s.Login("ivan")
	s.Logout()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Authenticated)
	assert.False(t, seen[1].Authenticated)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := NewStore()

	calls := 0
	unsub := s.Subscribe(func(State) { calls++ })

	s.Login("ivan")
	unsub()
	s.Logout()

	assert.Equal(t, 1, calls)
}

func TestResolveIfAppliesWhenGenerationUnchanged(t *testing.T) {
	s := NewStore()
	start := s.Generation()

	applied := s.resolveIf(start, true, "ivan")

	require.True(t, applied)
	state := s.Get()
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ivan", state.Username)
	assert.False(t, state.Loading)
}

func TestResolveIfDiscardsStaleWrite(t *testing.T) {
	s := NewStore()
	start := s.Generation()

	// A logout lands while the bootstrap is still in flight
	s.Logout()

	applied := s.resolveIf(start, true, "ivan")

	require.False(t, applied)
	state := s.Get()
	assert.False(t, state.Authenticated, "stale bootstrap must not resurrect the session")
	assert.Empty(t, state.Username)
	assert.False(t, state.Loading)
}

func TestResolveIfStaleStillEndsLoading(t *testing.T) {
	s := NewStore()
	start := s.Generation()

	// A login write bumps the generation but leaves Loading untouched
	s.Login("ivan")
	require.True(t, s.Get().Loading)

	applied := s.resolveIf(start, false, "")

	assert.False(t, applied)
	state := s.Get()
	assert.False(t, state.Loading, "a discarded bootstrap still terminates the loading phase")
	assert.True(t, state.Authenticated)
	assert.Equal(t, "ivan", state.Username)
}
