package date

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Birthdate *Date `json:"birthdate,omitempty"`
}

func TestDate_JSON(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"birthdate":"2011-04-23"}`), &p))
	require.NotNil(t, p.Birthdate)
	assert.Equal(t, time.Date(2011, time.April, 23, 0, 0, 0, 0, time.UTC), p.Birthdate.Time)

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birthdate":"2011-04-23"}`, string(out))
}

func TestDate_RejectsOtherLayouts(t *testing.T) {
	var p payload
	assert.Error(t, json.Unmarshal([]byte(`{"birthdate":"23.04.2011"}`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"birthdate":20110423}`), &p))
}

func TestDate_NullLeavesNil(t *testing.T) {
	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"birthdate":null}`), &p))
	assert.Nil(t, p.Birthdate)
}

func TestOf_TruncatesToDay(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 23, 30, 0, 0, time.FixedZone("CET", 3600))
	assert.Equal(t, "2024-03-09", Of(ts).String())
	assert.Nil(t, FromPtr(nil))
}
