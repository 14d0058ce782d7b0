package common

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp_Format(t *testing.T) {
	ts := Timestamp()

	parsed, err := time.Parse(TimestampLayout, ts)
	assert.NoError(t, err, "Expected timestamp to parse with its own layout")

	// No timezone suffix: plain ISO-8601 in UTC.
	assert.False(t, strings.HasSuffix(ts, "Z"), "Expected no Z suffix")
	assert.NotContains(t, ts, "+", "Expected no offset suffix")

	diff := time.Now().UTC().Sub(parsed)
	assert.GreaterOrEqual(t, diff, time.Duration(0), "Expected timestamp not to be in the future")
	assert.Less(t, diff, time.Minute, "Expected timestamp to be recent")
}
