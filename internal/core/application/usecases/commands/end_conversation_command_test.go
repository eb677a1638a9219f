package commands_test

import (
	"testing"

	"recycling/internal/core/application/usecases/commands"
	"recycling/internal/core/domain/model/conversation"
	"recycling/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndConversationCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	cmd, err := commands.NewEndConversationCommand(orderID, conversation.RoleRecycler, actorID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, conversation.RoleRecycler, cmd.Role())
	assert.Equal(t, actorID, cmd.ActorID())
}

func TestNewEndConversationCommand_SystemRole(t *testing.T) {
	_, err := commands.NewEndConversationCommand(kernel.NewUUID(), conversation.RoleSystem, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, conversation.ErrRoleCannotEndConversation)
}

func TestNewEndConversationCommand_InvalidRole(t *testing.T) {
	_, err := commands.NewEndConversationCommand(kernel.NewUUID(), conversation.RoleUnknown, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewEndConversationCommand_InvalidActorID(t *testing.T) {
	_, err := commands.NewEndConversationCommand(kernel.NewUUID(), conversation.RoleUser, kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
