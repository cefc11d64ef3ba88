package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReduce_RestoredWithUser(t *testing.T) {
	u := &User{ID: "1", Name: "Jo", Email: "jo@x.com"}

	s := Reduce(State{Phase: PhaseRestoring}, Restored{User: u})

	assert.Equal(t, PhaseAuthenticated, s.Phase)
	assert.Equal(t, u, s.User)
	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.IsLoading())
}

func TestReduce_RestoredWithoutUser(t *testing.T) {
	s := Reduce(State{Phase: PhaseRestoring}, Restored{})

	assert.Equal(t, PhaseAnonymous, s.Phase)
	assert.Nil(t, s.User)
}

func TestReduce_LoginThenLogout(t *testing.T) {
	u := &User{ID: "1", Name: "Jo", Email: "jo@x.com"}

	s := Reduce(State{Phase: PhaseAnonymous}, LoggedIn{User: u})
	assert.Equal(t, PhaseAuthenticated, s.Phase)
	assert.Equal(t, u, s.User)

	s = Reduce(s, LoggedOut{})
	assert.Equal(t, PhaseAnonymous, s.Phase)
	assert.Nil(t, s.User)
}

func TestReduce_UnknownEventLeavesStateUnchanged(t *testing.T) {
	type strayEvent struct{ Event }

	before := State{User: &User{ID: "1"}, Phase: PhaseAuthenticated}
	after := Reduce(before, strayEvent{})

	assert.Equal(t, before, after)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "restoring", PhaseRestoring.String())
	assert.Equal(t, "anonymous", PhaseAnonymous.String())
	assert.Equal(t, "authenticated", PhaseAuthenticated.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
