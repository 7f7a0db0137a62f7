package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/alexsagar/teantea-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testShopID = "4821"
	testIssuer = "teantea-test"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testShopID, "manager", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, shopID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testShopID, shopID)
	assert.Equal(t, "manager", role)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testShopID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("a-different-secret", tok)
	assert.Error(t, err)
}

func TestParse_ExpiredToken(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testShopID, "staff", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, _, _, err := pkgjwt.Parse(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testShopID, "admin", testIssuer, 60)
	assert.Error(t, err)
}
