package server

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egaotan/anchor-workspace/idl"
	"github.com/egaotan/anchor-workspace/workspace"
)

const systemProgram = "11111111111111111111111111111111"

const helloIdl = `{"version": "0.1.0", "name": "hello", "instructions": [{"name": "greet", "accounts": [], "args": []}]}`

func newTestServer(t *testing.T) (*Server, http.Handler) {
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	s := NewServer(context.Background(), "127.0.0.1:0", workspace.NewMemory(nil), logrus.NewEntry(logger))
	return s, s.Router()
}

func do(t *testing.T, h http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestClient(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/client", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ClientResponse
	decode(t, rec, &resp)
	assert.Equal(t, workspace.DefaultEndpoint, resp.Endpoint)
	assert.Equal(t, "confirmed", resp.Commitment)

	rec = do(t, h, http.MethodPut, "/api/workspace/connection", &ConnectionRequest{Endpoint: "https://example-rpc", Commitment: "finalized"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	decode(t, do(t, h, http.MethodGet, "/api/client", nil), &resp)
	assert.Equal(t, "https://example-rpc", resp.Endpoint)
	assert.Equal(t, "finalized", resp.Commitment)

	do(t, h, http.MethodPut, "/api/workspace/connection", &ConnectionRequest{Endpoint: "https://example-rpc", Commitment: "unknown"})
	decode(t, do(t, h, http.MethodGet, "/api/client", nil), &resp)
	assert.Equal(t, "confirmed", resp.Commitment)

	rec = do(t, h, http.MethodPut, "/api/workspace/connection", map[string]string{"commitment": "finalized"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSigner(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/signer", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	seed := bytes.Repeat([]byte{5}, ed25519.SeedSize)
	key := ed25519.NewKeyFromSeed(seed)
	rec = do(t, h, http.MethodPut, "/api/workspace/wallet", &WalletRequest{Keypair: workspace.Keypair(key)})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/signer", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp SignerResponse
	decode(t, rec, &resp)
	assert.Equal(t, solana.PrivateKey(key).PublicKey().String(), resp.PublicKey)
}

func TestIdl(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/idl", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/workspace/idl", &IdlRequest{Idl: helloIdl})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/idl", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	parsed, err := idl.Parse(rec.Body.String())
	require.NoError(t, err)
	expected, err := idl.Parse(helloIdl)
	require.NoError(t, err)
	assert.Equal(t, expected, parsed)

	do(t, h, http.MethodPut, "/api/workspace/idl", &IdlRequest{Idl: "{"})
	rec = do(t, h, http.MethodGet, "/api/idl", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/workspace/idl", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/idl", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProgramId(t *testing.T) {
	_, h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/program-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	token := "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	rec = do(t, h, http.MethodGet, "/api/program-id?explicit="+token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ProgramIdResponse
	decode(t, rec, &resp)
	assert.Equal(t, token, resp.ProgramId)

	rec = do(t, h, http.MethodGet, "/api/program-id?explicit=bogus0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/workspace/program-id", &ProgramIdRequest{ProgramId: systemProgram})
	require.Equal(t, http.StatusNoContent, rec.Code)

	decode(t, do(t, h, http.MethodGet, "/api/program-id", nil), &resp)
	assert.Equal(t, systemProgram, resp.ProgramId)

	decode(t, do(t, h, http.MethodGet, "/api/program-id?explicit="+token, nil), &resp)
	assert.Equal(t, token, resp.ProgramId)

	do(t, h, http.MethodPut, "/api/workspace/program-id", &ProgramIdRequest{ProgramId: "not-base58-0"})
	rec = do(t, h, http.MethodGet, "/api/program-id", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/workspace/program-id", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, "/api/program-id", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
