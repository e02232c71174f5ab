package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"chatapp/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestRedis(t *testing.T) *UserCache {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client, err := NewClient(ctx, fmt.Sprintf("%s:%s", host, port.Port()), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return NewUserCache(client, time.Minute)
}

func TestUserKey(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, "user:"+id.Hex(), userKey(id))
}

func TestUserCacheRoundTrip(t *testing.T) {
	c := newTestRedis(t)
	ctx := context.Background()

	alice := models.UserSummary{ID: primitive.NewObjectID(), Name: "Alice", Email: "alice@example.com", Pic: "a.png"}
	bob := models.UserSummary{ID: primitive.NewObjectID(), Name: "Bob", Email: "bob@example.com", Pic: "b.png"}
	unknown := primitive.NewObjectID()

	got, err := c.GetUsers(ctx, []primitive.ObjectID{alice.ID})
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, c.SetUsers(ctx, []models.UserSummary{alice, bob}))

	got, err = c.GetUsers(ctx, []primitive.ObjectID{alice.ID, unknown, bob.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alice", got[alice.ID].Name)
	assert.Equal(t, "b.png", got[bob.ID].Pic)
}
