package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/insurancebuddy/internal/app"
	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/server"
	tcommon "github.com/bobmcallan/insurancebuddy/tests/common"
)

const (
	adminUser     = "site-admin"
	adminPassword = "integration-password"
)

// Env runs the full site server on SurrealDB behind an httptest.Server.
type Env struct {
	t          *testing.T
	app        *app.App
	http       *httptest.Server
	resultsDir string
}

// newEnv uses the shared SurrealDB container (skipping without Docker) with
// a fresh database for this test, loads the sample catalog and creates the admin account.
func newEnv(t *testing.T) *Env {
	t.Helper()
	sc := tcommon.StartSurrealDB(t)

	cfg := common.NewDefaultConfig()
	cfg.Environment = "test"
	cfg.Storage = sc.StorageConfig(tcommon.APINamespace, "db_"+filepath.Base(t.Name()))
	cfg.Catalog.Path = filepath.Join(tcommon.FindProjectRoot(), "data", "plans.json")
	cfg.Auth.JWTSecret = "integration-secret"
	cfg.Contact.RatePerMinute = 600
	cfg.Contact.Burst = 50

	logger := common.NewSilentLogger()
	if os.Getenv("BUDDY_TEST_VERBOSE") == "true" {
		logger = common.NewDefaultLogger()
	}

	a, err := app.NewAppWithConfig(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = app.EnsureSuperuser(context.Background(), a.Storage.InternalStore(), logger,
		app.SuperuserRequest{Username: adminUser, Password: adminPassword, Email: "ops@example.com"})
	require.NoError(t, err)

	srv, err := server.NewServer(a)
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &Env{t: t, app: a, http: ts, resultsDir: tcommon.ResultsDir(t)}
}

// Do sends a JSON request and returns the status and raw body.
func (e *Env) Do(method, path string, body interface{}, token string) (int, []byte) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.http.URL+path, reader)
	require.NoError(e.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.http.Client().Do(req)
	require.NoError(e.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp.StatusCode, data
}

// Get is Do for an anonymous GET.
func (e *Env) Get(path string) (int, []byte) {
	e.t.Helper()
	return e.Do(http.MethodGet, path, nil, "")
}

// Login returns a bearer token for the admin account.
func (e *Env) Login() string {
	e.t.Helper()
	status, body := e.Do(http.MethodPost, "/api/auth/login",
		map[string]string{"username": adminUser, "password": adminPassword}, "")
	require.Equal(e.t, http.StatusOK, status, string(body))

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(e.t, json.Unmarshal(body, &resp))
	require.NotEmpty(e.t, resp.Data.Token)
	return resp.Data.Token
}

// Save writes a response body into the test's results directory.
func (e *Env) Save(name string, body []byte) {
	tcommon.SaveResult(e.t, e.resultsDir, name, []byte(tcommon.FormatJSON(body)))
}

func decode(t *testing.T, body []byte, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, v), string(body))
}
