// Package store owns the MongoDB client lifecycle. A Client is constructed
// once in main and handed to the repositories; nothing else in the codebase
// talks to the driver directly.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect establishes the connection and verifies it with a ping before
// returning a usable Client.
func Connect(ctx context.Context, uri, dbName string) (*Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging MongoDB: %w", err)
	}

	return &Client{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Ping verifies the server is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle to a named collection in the configured
// database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Close tears down the connection. The Client must not be used afterwards.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
