package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_ProviderRole(t *testing.T) {
	assert.Equal(t, RoleUser, RoleUser.ProviderRole())
	assert.Equal(t, RoleModel, RoleModel.ProviderRole())
	assert.Equal(t, RoleModel, Role("assistant").ProviderRole())
	assert.Equal(t, RoleModel, Role("system").ProviderRole())
}

func TestMessage_Valid(t *testing.T) {
	assert.True(t, Message{Role: RoleUser, Content: "hello"}.Valid())
	assert.False(t, Message{Role: "", Content: "hello"}.Valid())
	assert.False(t, Message{Role: RoleUser, Content: ""}.Valid())
	assert.True(t, Message{Role: RoleModel, Content: "  "}.Valid())
}
