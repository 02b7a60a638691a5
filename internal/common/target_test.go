package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTarget_ChannelWins(t *testing.T) {
	target := ResolveTarget("conv-1", "chan-1")

	assert.True(t, target.IsChannel())
	assert.Equal(t, "chan-1", target.ChannelID())
	assert.Empty(t, target.ConversationID(), "conversation id must be dropped when a channel is addressed")
}

func TestResolveTarget_ConversationOnly(t *testing.T) {
	target := ResolveTarget("conv-1", "")

	assert.False(t, target.IsChannel())
	assert.Equal(t, "conv-1", target.ConversationID())
}

func TestTarget_IsZero(t *testing.T) {
	assert.True(t, Target{}.IsZero())
	assert.True(t, ResolveTarget("", "").IsZero())
	assert.False(t, ConversationTarget("c").IsZero())
	assert.False(t, ChannelTarget("ch").IsZero())
}
