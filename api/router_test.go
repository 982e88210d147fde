package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/labyrinth/api/i"
	"github.com/beka-birhanu/labyrinth/api/identity"
	labyrinthapi "github.com/beka-birhanu/labyrinth/api/labyrinth"
	"github.com/beka-birhanu/labyrinth/infrastruture/token"
	"github.com/beka-birhanu/labyrinth/logger"
	"github.com/beka-birhanu/labyrinth/service"
	"github.com/beka-birhanu/labyrinth/solver"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokenizer := token.NewJwtService("test-secret", "labyrinth-test")
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	auth, err := service.NewClientAuth("cli", string(hash), tokenizer)
	require.NoError(t, err)

	svc, err := service.NewLabyrinthService(solver.New(solver.Options{}), nil, nil, logger.Discard())
	require.NoError(t, err)
	solveController, err := labyrinthapi.NewLabyrinthController(svc, 0)
	require.NoError(t, err)

	router := NewRouter(Config{
		BaseURL:                 "/api",
		Controllers:             []i.Controller{identity.NewIdentityServer(auth), solveController},
		AuthorizationMiddleware: identity.Authoriz(tokenizer),
	})
	return router.Handler()
}

func post(engine *gin.Engine, path, bearer string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	engine := newTestRouter(t)
	maze := map[string]string{"maze": "4,3\n000\n111\n001\n000"}

	t.Run("Protected routes need a token", func(t *testing.T) {
		rec := post(engine, "/api/v1/labyrinth/solve", "", maze)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = post(engine, "/api/v1/labyrinth/solve", "garbage", maze)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Wrong credentials are refused", func(t *testing.T) {
		rec := post(engine, "/api/v1/auth/token", "", identity.TokenRequest{ClientID: "cli", Secret: "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Token then solve", func(t *testing.T) {
		rec := post(engine, "/api/v1/auth/token", "", identity.TokenRequest{ClientID: "cli", Secret: "s3cret"})
		require.Equal(t, http.StatusOK, rec.Code)

		var tokenResponse identity.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tokenResponse))
		require.NotEmpty(t, tokenResponse.Token)

		rec = post(engine, "/api/v1/labyrinth/solve", tokenResponse.Token, maze)
		require.Equal(t, http.StatusOK, rec.Code)

		var solveResponse labyrinthapi.SolveResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &solveResponse))
		assert.True(t, solveResponse.Found)
		assert.Equal(t, 1, solveResponse.Turns)

		rec = post(engine, "/api/v1/labyrinth/solve", tokenResponse.Token, map[string]string{"maze": "3,x\n"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
