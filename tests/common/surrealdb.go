// Package common provides shared test infrastructure: a SurrealDB container
// for the storage and API suites plus result-file helpers.
package common

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	appcommon "github.com/bobmcallan/insurancebuddy/internal/common"
)

// Namespaces defined on the shared container before any test connects.
const (
	StorageNamespace = "buddy_test"
	APINamespace     = "buddy_api"
)

const defaultSurrealImage = "surrealdb/surrealdb:v3.0.0"

// SurrealDBOptions configures the shared container. Only the options of the
// first start in a process take effect.
type SurrealDBOptions struct {
	Image          string
	Username       string
	Password       string
	Namespaces     []string
	StartupTimeout time.Duration
}

// DefaultSurrealDBOptions returns root credentials, both test namespaces and
// the pinned image, overridable with BUDDY_TEST_SURREALDB_IMAGE.
func DefaultSurrealDBOptions() SurrealDBOptions {
	image := defaultSurrealImage
	if v := os.Getenv("BUDDY_TEST_SURREALDB_IMAGE"); v != "" {
		image = v
	}
	return SurrealDBOptions{
		Image:          image,
		Username:       "root",
		Password:       "root",
		Namespaces:     []string{StorageNamespace, APINamespace},
		StartupTimeout: 60 * time.Second,
	}
}

var (
	surrealOnce      sync.Once
	surrealContainer *SurrealDBContainer
	surrealError     error
)

// SurrealDBContainer is a running SurrealDB server shared by the test binary.
type SurrealDBContainer struct {
	container testcontainers.Container
	address   string
	opts      SurrealDBOptions
}

// StartSurrealDB skips the test unless BUDDY_TEST_DOCKER=true, then returns
// the shared container started with DefaultSurrealDBOptions.
func StartSurrealDB(t *testing.T) *SurrealDBContainer {
	t.Helper()
	return StartSurrealDBWith(t, DefaultSurrealDBOptions())
}

// StartSurrealDBWith is StartSurrealDB with explicit options.
func StartSurrealDBWith(t *testing.T, opts SurrealDBOptions) *SurrealDBContainer {
	t.Helper()
	RequireDocker(t)

	surrealOnce.Do(func() {
		surrealContainer, surrealError = startSurrealDB(context.Background(), opts)
	})
	if surrealError != nil {
		t.Fatalf("SurrealDB container failed: %v", surrealError)
	}
	return surrealContainer
}

func startSurrealDB(ctx context.Context, opts SurrealDBOptions) (*SurrealDBContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        opts.Image,
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--user", opts.Username, "--pass", opts.Password},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("8000/tcp"),
				wait.ForLog("Started web server"),
			).WithDeadline(opts.StartupTimeout),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", opts.Image, err)
	}

	endpoint, err := container.PortEndpoint(ctx, "8000/tcp", "ws")
	if err != nil {
		container.Terminate(ctx)
		return nil, fmt.Errorf("resolve SurrealDB endpoint: %w", err)
	}

	sc := &SurrealDBContainer{container: container, address: endpoint + "/rpc", opts: opts}
	if err := sc.defineNamespaces(ctx); err != nil {
		container.Terminate(ctx)
		return nil, err
	}
	return sc, nil
}

func (c *SurrealDBContainer) defineNamespaces(ctx context.Context) error {
	db, err := surrealdb.New(c.address)
	if err != nil {
		return fmt.Errorf("connect to SurrealDB: %w", err)
	}
	defer db.Close(ctx)

	if _, err := db.SignIn(ctx, map[string]interface{}{
		"user": c.opts.Username,
		"pass": c.opts.Password,
	}); err != nil {
		return fmt.Errorf("sign in to SurrealDB: %w", err)
	}
	for _, ns := range c.opts.Namespaces {
		sql := fmt.Sprintf("DEFINE NAMESPACE IF NOT EXISTS %s", ns)
		if _, err := surrealdb.Query[any](ctx, db, sql, nil); err != nil {
			return fmt.Errorf("define namespace %s: %w", ns, err)
		}
	}
	return nil
}

// Address returns the WebSocket RPC address.
func (c *SurrealDBContainer) Address() string {
	return c.address
}

// Credentials returns the root user the container was started with.
func (c *SurrealDBContainer) Credentials() (username, password string) {
	return c.opts.Username, c.opts.Password
}

// StorageConfig points the site's storage settings at this container.
func (c *SurrealDBContainer) StorageConfig(namespace, database string) appcommon.StorageConfig {
	return appcommon.StorageConfig{
		Backend:   "surrealdb",
		Address:   c.address,
		Namespace: namespace,
		Database:  database,
		Username:  c.opts.Username,
		Password:  c.opts.Password,
	}
}

// Cleanup terminates the container. Call from TestMain if needed.
func (c *SurrealDBContainer) Cleanup() {
	if c != nil && c.container != nil {
		c.container.Terminate(context.Background())
	}
}
