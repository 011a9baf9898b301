package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
	assert.Regexp(t, "^[A-Za-z0-9]+$", id)
}
