package timeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	cases := map[string]TimeOfDay{
		"00:00": 0,
		"09:00": 540,
		"9:05":  545,
		"13:30": 810,
		"23:59": 1439,
	}
	for input, want := range cases {
		got, err := ParseTime(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestParseTimeRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "0900", "09.00", "ab:cd", "09:5", "24:00", "12:60", "-1:00", "+9:00", "09:00:00", " 9:00"} {
		_, err := ParseTime(input)
		var malformed *MalformedTimeError
		require.ErrorAs(t, err, &malformed, input)
		assert.Equal(t, input, malformed.Input)
	}
}

func TestFormatTime24hRoundTrip(t *testing.T) {
	for m := TimeOfDay(0); m < MinutesPerDay; m++ {
		parsed, err := ParseTime(FormatTime(m, Clock24h))
		require.NoError(t, err)
		require.Equal(t, m, parsed)
	}
}

func TestFormatTime12h(t *testing.T) {
	assert.Equal(t, "12:00 AM", FormatTime(0, Clock12h))
	assert.Equal(t, "9:05 AM", FormatTime(545, Clock12h))
	assert.Equal(t, "12:30 PM", FormatTime(750, Clock12h))
	assert.Equal(t, "1:00 PM", FormatTime(780, Clock12h))
	assert.Equal(t, "11:59 PM", FormatTime(1439, Clock12h))
	assert.Equal(t, "6:00 pm", FormatTime(1080, Clock12hLower))
	assert.Equal(t, "09:00", FormatTime(540, Clock24h))
}

func TestParseClockStyle(t *testing.T) {
	style, err := ParseClockStyle("")
	require.NoError(t, err)
	assert.Equal(t, Clock24h, style)

	style, err = ParseClockStyle("12H")
	require.NoError(t, err)
	assert.Equal(t, Clock12h, style)

	_, err = ParseClockStyle("iso")
	require.Error(t, err)
}

func TestTimeOfDayJSON(t *testing.T) {
	raw, err := json.Marshal(TimeOfDay(545))
	require.NoError(t, err)
	assert.JSONEq(t, `"09:05"`, string(raw))

	var decoded TimeOfDay
	require.NoError(t, json.Unmarshal([]byte(`"13:00"`), &decoded))
	assert.Equal(t, TimeOfDay(780), decoded)

	var malformed *MalformedTimeError
	require.ErrorAs(t, json.Unmarshal([]byte(`"13h00"`), &decoded), &malformed)
	require.ErrorAs(t, json.Unmarshal([]byte(`780`), &decoded), &malformed)
}

func TestIntervalJSON(t *testing.T) {
	var busy []Interval
	require.NoError(t, json.Unmarshal([]byte(`[["09:00","10:30"],["13:00","14:00"]]`), &busy))
	require.Len(t, busy, 2)
	assert.Equal(t, Interval{Start: 540, End: 630}, busy[0])

	raw, err := json.Marshal(busy)
	require.NoError(t, err)
	assert.JSONEq(t, `[["09:00","10:30"],["13:00","14:00"]]`, string(raw))

	var iv Interval
	require.Error(t, json.Unmarshal([]byte(`["09:00"]`), &iv))
}
