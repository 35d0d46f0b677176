package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaulterm/internal/api"
)

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStore(dir)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())

	user := api.User{ID: "u1", Email: "u@example.com", IsAdmin: true}
	require.NoError(t, s.Save("tok", user))
	assert.True(t, s.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "tok", s.Token())

	// A fresh store picks the session up from disk.
	s2, err := NewStore(dir)
	require.NoError(t, err)
	got, ok := s2.User()
	require.True(t, ok)
	assert.Equal(t, "u@example.com", got.Email)
	assert.Equal(t, "tok", s2.Token())
}

func TestSessionFilePermissions(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok", api.User{}))

	info, err := os.Stat(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok", api.User{Email: "u@x.com"}))

	s.Clear()
	assert.False(t, s.IsAuthenticated())
	_, err = os.Stat(filepath.Join(dir, "session.json"))
	assert.True(t, os.IsNotExist(err))

	// Clearing twice is fine.
	s.Clear()
}

func TestUpdateUserKeepsToken(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save("tok", api.User{FullName: "Old"}))

	require.NoError(t, s.UpdateUser(api.User{FullName: "New"}))
	u, ok := s.User()
	require.True(t, ok)
	assert.Equal(t, "New", u.FullName)
	assert.Equal(t, "tok", s.Token())
}

func TestUpdateUserWithoutSession(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, s.UpdateUser(api.User{}))
}

func TestCorruptFileMeansLoggedOut(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0600))

	s, err := NewStore(dir)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
}

func TestTokenExpiry(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	// No session, no expiry.
	_, ok := s.TokenExpiry()
	assert.False(t, ok)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, s.Save(signed, api.User{}))

	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(exp), "got %v, want %v", got, exp)
}

func TestTokenExpiryOpaqueToken(t *testing.T) {
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Save("not-a-jwt", api.User{}))

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}
