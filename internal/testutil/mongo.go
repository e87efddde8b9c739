//go:build integration

// Package testutil provides testcontainers helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
}

// SetupMongoDB starts a MongoDB container. Prefer SetupTestMainWithMongoDB
// so one container serves a whole package.
func SetupMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = testcontainers.TerminateContainer(container)
		return nil, fmt.Errorf("get connection string: %w", err)
	}
	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Cleanup terminates the container.
func (m *MongoDBContainer) Cleanup(ctx context.Context) error {
	if m == nil || m.Container == nil {
		return nil
	}
	return testcontainers.TerminateContainer(m.Container, testcontainers.StopContext(ctx))
}

var (
	shared     *MongoDBContainer
	sharedOnce sync.Once
	sharedErr  error
)

// SetupTestMainWithMongoDB runs m against a shared MongoDB container:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		shared, sharedErr = SetupMongoDB(ctx)
	})
	if sharedErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "mongodb container: %v\n", sharedErr)
		return 1
	}

	code := m.Run()

	if err := shared.Cleanup(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: cleanup MongoDB container: %v\n", err)
	}
	return code
}

// SharedURI returns the URI of the container started by SetupTestMainWithMongoDB.
func SharedURI() string {
	if shared == nil {
		panic("shared MongoDB container not initialized")
	}
	return shared.URI
}

// DatabaseName turns a test name into a unique, valid MongoDB database name.
func DatabaseName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1_000_000)
}
