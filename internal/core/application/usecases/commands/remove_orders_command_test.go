package commands_test

import (
	"context"
	"testing"

	"deliverymanager/internal/adapters/out/inmem"
	"deliverymanager/internal/core/application/usecases/commands"
	"deliverymanager/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveOrdersCommand_ValidInput(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID()}
	cmd, err := commands.NewRemoveOrdersCommand(ids)
	require.NoError(t, err)
	assert.Equal(t, ids, cmd.OrderIDs())
}

func TestNewRemoveOrdersCommand_NoIDs(t *testing.T) {
	_, err := commands.NewRemoveOrdersCommand(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDsAreRequired)
}

func TestRemoveOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should remove exactly the named orders", func(t *testing.T) {
		repo := inmem.NewOrderRepository()
		removed := storePendingOrder(t, repo)
		kept := storePendingOrder(t, repo)
		handler := commands.NewRemoveOrdersCommandHandler(repo)

		cmd, err := commands.NewRemoveOrdersCommand([]kernel.UUID{removed})
		require.NoError(t, err)
		require.NoError(t, handler.Handle(context.Background(), cmd))

		_, err = repo.Get(context.Background(), removed)
		assert.Error(t, err)
		_, err = repo.Get(context.Background(), kept)
		assert.NoError(t, err)
	})

	t.Run("should fail before removing when one id is unknown", func(t *testing.T) {
		repo := inmem.NewOrderRepository()
		stored := storePendingOrder(t, repo)
		handler := commands.NewRemoveOrdersCommandHandler(repo)

		cmd, err := commands.NewRemoveOrdersCommand([]kernel.UUID{stored, kernel.NewUUID()})
		require.NoError(t, err)

		require.Error(t, handler.Handle(context.Background(), cmd))

		_, err = repo.Get(context.Background(), stored)
		assert.NoError(t, err)
	})

	t.Run("should reject an unconstructed command", func(t *testing.T) {
		handler := commands.NewRemoveOrdersCommandHandler(inmem.NewOrderRepository())

		err := handler.Handle(context.Background(), commands.RemoveOrdersCommand{})

		assert.ErrorIs(t, err, commands.ErrRemoveOrdersCommandIsNotConstructed)
	})
}
