package tests

import (
	"net/http"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/tutordesk/apps/api/echo"
	"github.com/trezcool/tutordesk/core/user"
)

func Test_home(t *testing.T) {
	env := setup(t)

	rec := env.do(http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Tutordesk API!", rec.Body.String())
}

func Test_authApi_login(t *testing.T) {
	env := setup(t)
	invalid := marchallObj(t, httpErr{Error: "Invalid credentials"})

	tests := []httpTest{
		{name: "no body", method: http.MethodPost, path: "/v1/auth/login", wantCode: http.StatusBadRequest, wantData: invalid},
		{
			name: "missing password", method: http.MethodPost, path: "/v1/auth/login",
			body:     marchallObj(t, user.Credentials{Email: "sarah@test.sg"}),
			wantCode: http.StatusBadRequest, wantData: invalid,
		},
		{
			name: "blank email", method: http.MethodPost, path: "/v1/auth/login",
			body:     marchallObj(t, user.Credentials{Email: "   ", Password: "pwd"}),
			wantCode: http.StatusBadRequest, wantData: invalid,
		},
		{
			name: "malformed body", method: http.MethodPost, path: "/v1/auth/login",
			body: []byte(`{"email": 1}`), wantCode: http.StatusBadRequest,
		},
	}
	runHTTPTests(t, env, tests)
}

func Test_authApi_login_success(t *testing.T) {
	env := setup(t)
	creds := user.Credentials{Email: " Sarah@Test.SG ", Password: "anything"}

	rec := env.do(http.MethodPost, "/v1/auth/login", "", marchallObj(t, creds))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp LoginResponse
	unmarchall(t, rec, &resp)
	assert.Equal(t, user.User{ID: "1", Name: tutorName, Email: "sarah@test.sg"}, resp.User)

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(env.conf.SecretKey), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.NotEmpty(t, claims.Id)
	assert.Equal(t, resp.User, claims.User())

	// every login opens a new session
	rec = env.do(http.MethodPost, "/v1/auth/login", "", marchallObj(t, creds))
	var resp2 LoginResponse
	unmarchall(t, rec, &resp2)
	claims2 := new(Claims)
	_, err = jwt.ParseWithClaims(resp2.Token, claims2, func(*jwt.Token) (interface{}, error) {
		return []byte(env.conf.SecretKey), nil
	})
	require.NoError(t, err)
	assert.NotEqual(t, claims.Id, claims2.Id)
}

func Test_auth_required(t *testing.T) {
	env := setup(t)
	expired := GetUserClaims(user.User{ID: "1", Name: tutorName}, env.conf)
	expired.ExpiresAt = expired.IssuedAt - 60
	expiredToken, err := GenerateToken(expired, env.conf.SecretKey)
	require.NoError(t, err)
	forged, err := GenerateToken(GetUserClaims(user.User{ID: "1", Name: tutorName}, env.conf), "not-the-secret")
	require.NoError(t, err)
	invalid := marchallObj(t, httpErr{Error: "invalid or expired jwt"})

	tests := []httpTest{
		{name: "lessons", path: "/v1/lessons", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "take", method: http.MethodPost, path: "/v1/lessons/1/take", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "dashboard", path: "/v1/dashboard", wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)},
		{name: "expired", path: "/v1/dashboard", token: expiredToken, wantCode: http.StatusUnauthorized, wantData: invalid},
		{name: "forged", path: "/v1/dashboard", token: forged, wantCode: http.StatusUnauthorized, wantData: invalid},
	}
	runHTTPTests(t, env, tests)
}
