package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-sync/feature/park/models"
	"park-sync/feature/park/normalize"
)

func TestClassifyWait(t *testing.T) {
	cases := []struct {
		name    string
		raw     any
		closed  bool
		status  string
		want    models.Status
		minutes *int
	}{
		{"number", 25, false, "", models.StatusOpen, intPtr(25)},
		{"float", 12.0, false, "", models.StatusOpen, intPtr(12)},
		{"numeric string", " 40 ", false, "", models.StatusOpen, intPtr(40)},
		{"zero stays open", 0, false, "", models.StatusOpen, intPtr(0)},
		{"sentinel", -1, false, "", models.StatusClosed, nil},
		{"any negative", -5, false, "", models.StatusClosed, nil},
		{"closed flag wins", 30, true, "", models.StatusClosed, nil},
		{"closed status text", 30, false, "已关闭", models.StatusClosed, nil},
		{"closed word as wait", "closed", false, "", models.StatusClosed, nil},
		{"null", nil, false, "", models.StatusUnknown, nil},
		{"null but open", nil, false, "open", models.StatusOpen, nil},
		{"empty string", "", false, "", models.StatusUnknown, nil},
		{"unrecognised text", "维护中", false, "", models.StatusUnknown, nil},
		{"placeholder text", "N/A", false, "", models.StatusUnknown, nil},
		{"text with open status", "see board", false, "open", models.StatusOpen, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			q, err := normalize.ClassifyWait(c.raw, c.closed, c.status)
			require.NoError(t, err)
			assert.Equal(t, c.want, q.Status)
			assert.Equal(t, c.minutes, q.Minutes)
		})
	}
}

func TestClassifyWait_Malformed(t *testing.T) {
	for _, raw := range []any{true, []int{1}, map[string]any{"minutes": 5}} {
		_, err := normalize.ClassifyWait(raw, false, "")
		assert.ErrorIs(t, err, normalize.ErrMalformedRecord, "%v", raw)
	}
}

func TestQueueState_ApplyTo(t *testing.T) {
	at := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

	t.Run("open", func(t *testing.T) {
		var e models.AttractionEntry
		normalize.QueueState{Minutes: intPtr(35), Status: models.StatusOpen}.ApplyTo(&e, at)
		assert.Equal(t, 35, e.QueueTime)
		assert.Equal(t, models.WaitMinutes(35), e.WaitTime)
		assert.Equal(t, models.UnitMinutes, e.WaitUnit)
		assert.Equal(t, models.ColorOrange, e.ColorTheme)
		assert.Equal(t, at, e.UpdateTime)
	})

	t.Run("closed", func(t *testing.T) {
		e := models.AttractionEntry{QueueTime: 50, WaitTime: models.WaitMinutes(50)}
		normalize.QueueState{Status: models.StatusClosed}.ApplyTo(&e, at)
		assert.Equal(t, 0, e.QueueTime)
		assert.Equal(t, models.WaitLabel(models.LabelClosed), e.WaitTime)
		assert.Equal(t, models.UnitStatus, e.WaitUnit)
		assert.Equal(t, models.StatusClosed, e.Status)
		assert.Equal(t, models.ColorGray, e.ColorTheme)
	})

	t.Run("unknown", func(t *testing.T) {
		var e models.AttractionEntry
		normalize.QueueState{Status: models.StatusUnknown}.ApplyTo(&e, at)
		assert.Equal(t, models.WaitLabel(models.LabelUnknown), e.WaitTime)
		assert.Equal(t, models.ColorGray, e.ColorTheme)
	})
}

// A zero wait keeps the ride open with a 0-minute queue and a gray theme.
// Only the closed flag, a closed status word or a negative wait close it, so
// waitTime 0 alone does not imply status closed.
func TestClassifyWait_ZeroIsOpenNotClosed(t *testing.T) {
	at := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)

	q, err := normalize.ClassifyWait(0, false, "")
	require.NoError(t, err)
	assert.False(t, q.Closed())

	var e models.AttractionEntry
	q.ApplyTo(&e, at)
	assert.Equal(t, models.StatusOpen, e.Status)
	assert.Equal(t, 0, e.QueueTime)
	assert.Equal(t, models.WaitMinutes(0), e.WaitTime)
	assert.Equal(t, models.UnitMinutes, e.WaitUnit)
	assert.Equal(t, models.ColorGray, e.ColorTheme)

	closed, err := normalize.ClassifyWait(0, true, "")
	require.NoError(t, err)
	closed.ApplyTo(&e, at)
	assert.Equal(t, models.StatusClosed, e.Status)
	assert.Equal(t, models.WaitLabel(models.LabelClosed), e.WaitTime)
}
