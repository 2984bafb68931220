package util

import (
	"testing"

	"github.com/jxskiss/base62"
	"github.com/stretchr/testify/assert"
)

func TestUniqueIDGenerate(t *testing.T) {
	uniqueIDGenerate, err := GetUniqueIDGenerate()
	assert.Nil(t, err)

	firstID := uniqueIDGenerate.Generate()
	secondID := uniqueIDGenerate.Generate()
	assert.Less(t, firstID.GetInt64(), secondID.GetInt64())

	decodedID, err := base62.ParseInt([]byte(firstID.GetBase62()))
	assert.Nil(t, err)
	assert.Equal(t, firstID.GetInt64(), decodedID)
}

func TestGetSnowflakeIDInt64(t *testing.T) {
	assert.NotZero(t, GetSnowflakeIDInt64())
}
