// Package notify_test contains unit tests for the notify package.
package notify_test

import (
	"context"
	"testing"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sarkarihub/govjobs/internal/notify"
)

func TestPubSubProviderPublishAndClose(t *testing.T) {
	ctx := context.Background()

	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	client, err := pubsub.NewClient(ctx, "project-id", option.WithGRPCConn(conn))
	require.NoError(t, err)
	defer client.Close()

	topic, err := client.CreateTopic(ctx, "topic-id")
	require.NoError(t, err)

	sub, err := client.CreateSubscription(ctx, "sub-id", pubsub.SubscriptionConfig{Topic: topic})
	require.NoError(t, err)

	provider := &notify.PubSubProvider{
		Client: client,
		Topic:  topic,
	}

	cycleID := "test-cycle-id"
	require.NoError(t, provider.Publish(ctx, cycleID))

	recvCtx, cancel := context.WithCancel(ctx)
	c := make(chan *pubsub.Message, 1)
	go func() {
		_ = sub.Receive(recvCtx, func(_ context.Context, msg *pubsub.Message) {
			msg.Ack()
			select {
			case c <- msg:
			default:
			}
			cancel()
		})
	}()
	msg := <-c
	assert.Equal(t, cycleID, string(msg.Data))

	assert.NoError(t, provider.Close())
}

func TestNoOpProvider(t *testing.T) {
	t.Parallel()

	p := &notify.NoOpProvider{}
	require.NoError(t, p.Publish(context.Background(), "cycle"))
	require.NoError(t, p.Close())
}
