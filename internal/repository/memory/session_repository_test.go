package memory

import (
	"testing"

	"marketing-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository()

	session := store.NewSession("abc")
	session.Draft = "# Plan"
	repo.Save(session)

	got, found := repo.Get("abc")
	require.True(t, found)
	assert.Same(t, session, got)
}

func TestSessionRepositoryMiss(t *testing.T) {
	repo := NewSessionRepository()

	_, found := repo.Get("nothing")
	assert.False(t, found)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()
	repo.Save(store.NewSession("abc"))

	repo.Delete("abc")

	_, found := repo.Get("abc")
	assert.False(t, found)
}
