package provider

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("dial error", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(context.Background(), "invalid://url", common.Address{})
		require.Error(t, err)
		require.Nil(t, client)
	})
}

func TestSubmitCallsEmptyBatch(t *testing.T) {
	t.Parallel()

	c := &Client{}
	_, err := c.SubmitCalls(context.Background(), nil, nil)
	require.Error(t, err)
}
