package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	a := assert.New(t)
	a.Equal("fallback", Getenv("test_getenv_key", "fallback"))

	t.Setenv("test_getenv_key", "set")
	a.Equal("set", Getenv("test_getenv_key", "fallback"))

	t.Setenv("test_getenv_key", "")
	a.Equal("fallback", Getenv("test_getenv_key", "fallback"))
}
