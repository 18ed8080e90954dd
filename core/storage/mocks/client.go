package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Prepare(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Client) Put(ctx context.Context, name string, reader io.Reader) error {
	args := m.Called(ctx, name, reader)
	return args.Error(0)
}

func (m *Client) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	args := m.Called(ctx, name)
	if obj, ok := args.Get(0).(io.ReadCloser); ok {
		return obj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Location() string {
	args := m.Called()
	return args.String(0)
}
