package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Checks(t *testing.T) {
	invalid := NewDomainError(ModuleRerank, ErrorCodeInvalidInput, "bad ranking")
	wrapped := fmt.Errorf("node rerank.feedback: %w", invalid)

	assert.Equal(t, "bad ranking", invalid.Error())
	assert.True(t, IsDomainError(wrapped))
	assert.True(t, IsInvalidInput(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.Same(t, invalid, GetDomainError(wrapped))

	assert.False(t, IsDomainError(nil))
	assert.False(t, IsDomainError(errors.New("plain")))
	assert.Nil(t, GetDomainError(errors.New("plain")))
}

func TestIsStoreNotFound(t *testing.T) {
	assert.True(t, IsStoreNotFound(ErrStoreNotFound))
	assert.True(t, IsStoreNotFound(fmt.Errorf("get: %w", ErrStoreNotFound)))
	assert.False(t, IsStoreNotFound(ErrStoreNotSupported))
	assert.True(t, IsNotSupported(ErrStoreNotSupported))
	// 其他模块的 NOT_FOUND 不算 store 错误
	assert.False(t, IsStoreNotFound(NewDomainError(ModuleLoader, ErrorCodeNotFound, "x")))
	assert.False(t, IsUnavailable(nil))
}
