package token

import (
	"strings"
	"testing"
	"time"

	"github.com/RajaPrasetya/pos-server-api/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func testUser() *entity.User {
	return &entity.User{
		IDUser:   7,
		Username: "budi",
		Role:     entity.RoleManager,
	}
}

func TestIssueAndDecodeRoundTrip(t *testing.T) {
	signed, expiresAt, err := Issue(testSecret, time.Hour, testUser())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims := Decode(testSecret, signed)
	require.NotNil(t, claims)
	assert.Equal(t, int64(7), claims.IDUser)
	assert.Equal(t, "budi", claims.Username)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	signed, _, err := Issue(testSecret, time.Hour, testUser())
	require.NoError(t, err)

	assert.Nil(t, Decode("another-secret", signed))
}

func TestDecodeRejectsExpiredToken(t *testing.T) {
	signed, _, err := Issue(testSecret, -time.Minute, testUser())
	require.NoError(t, err)

	assert.Nil(t, Decode(testSecret, signed))
}

func TestDecodeRejectsTamperedToken(t *testing.T) {
	signed, _, err := Issue(testSecret, time.Hour, testUser())
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJpZF91c2VyIjo5OTl9." + parts[2]

	assert.Nil(t, Decode(testSecret, tampered))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	assert.Nil(t, Decode(testSecret, "not-a-token"))
	assert.Nil(t, Decode(testSecret, ""))
}

func TestIssuedTokensAreUnique(t *testing.T) {
	user := testUser()

	first, _, err := Issue(testSecret, time.Hour, user)
	require.NoError(t, err)
	second, _, err := Issue(testSecret, time.Hour, user)
	require.NoError(t, err)

	// The jti keeps two logins in the same second distinguishable.
	assert.NotEqual(t, first, second)
}
