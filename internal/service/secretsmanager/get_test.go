package secretsmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStringField(t *testing.T) {
	secretMap := map[string]interface{}{
		"region": "us-west-2",
		"empty":  "",
		"number": 42.0,
		"null":   nil,
	}

	v, ok, err := GetStringField(secretMap, "region")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "us-west-2", v)

	_, ok, err = GetStringField(secretMap, "empty")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = GetStringField(secretMap, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = GetStringField(secretMap, "null")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = GetStringField(secretMap, "number")
	assert.Error(t, err)
}
