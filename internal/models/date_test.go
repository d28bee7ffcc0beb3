package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateWireFormat(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &d))
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(out))
}

func TestDateNullAndZero(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))

	val, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestDateScanTruncatesTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, time.March, 1, 17, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2025-03-01", d.Format("2006-01-02"))
	assert.Zero(t, d.Hour())
}

func TestDateRejectsBadInput(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"03/01/2025"`), &d))
	assert.Error(t, d.Scan(42))
}
