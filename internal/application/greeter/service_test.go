package greeter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestService_StaticMessages(t *testing.T) {
	s := NewService()

	assert.Equal(t, "Hello, Nikhil Lohar this side. Welcome to my first Node.js app!", s.Greeting())
	assert.Equal(t, "The server up and running!", s.Health())

	// Repeated calls are byte-identical
	assert.Equal(t, s.Greeting(), s.Greeting())
	assert.Equal(t, s.Health(), s.Health())
}

func TestService_CurrentTime(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"afternoon", time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC), "The current time is 2:05:09 PM"},
		{"morning", time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), "The current time is 9:30:00 AM"},
		{"midnight", time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC), "The current time is 12:00:01 AM"},
		{"noon", time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), "The current time is 12:00:00 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(WithClock(fixedClock(tt.at)), WithLocation(time.UTC))
			assert.Equal(t, tt.want, s.CurrentTime())
		})
	}
}

func TestService_CurrentTimeLocation(t *testing.T) {
	at := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	plusTwo := time.FixedZone("UTC+2", 2*60*60)

	s := NewService(WithClock(fixedClock(at)), WithLocation(plusTwo))
	assert.Equal(t, "The current time is 4:05:09 PM", s.CurrentTime())
}

func TestService_CurrentTimeLayout(t *testing.T) {
	at := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)

	s := NewService(WithClock(fixedClock(at)), WithLocation(time.UTC), WithLayout("15:04:05"))
	assert.Equal(t, "The current time is 14:05:09", s.CurrentTime())
	assert.Equal(t, "15:04:05", s.layout)
}

func TestService_EmptyOptionsKeepDefaults(t *testing.T) {
	s := NewService(WithLayout(""), WithLocation(nil))
	assert.Equal(t, DefaultLayout, s.layout)
	assert.Equal(t, time.Local, s.location)
}

func TestService_CurrentTimeReadsClockPerCall(t *testing.T) {
	now := time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC)
	s := NewService(WithClock(func() time.Time { return now }), WithLocation(time.UTC))

	first := s.CurrentTime()
	now = now.Add(3 * time.Second)
	second := s.CurrentTime()

	assert.NotEqual(t, first, second)
	assert.Equal(t, "The current time is 2:05:12 PM", second)
}

func TestService_CurrentTimeRealClock(t *testing.T) {
	s := NewService(WithLocation(time.UTC))

	before := time.Now().UTC()
	msg := s.CurrentTime()

	require.True(t, strings.HasPrefix(msg, TimePrefix))
	parsed, err := time.Parse(DefaultLayout, strings.TrimPrefix(msg, TimePrefix))
	require.NoError(t, err)

	got := time.Date(before.Year(), before.Month(), before.Day(),
		parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC)
	diff := got.Sub(before.Truncate(time.Second))
	if diff > 12*time.Hour {
		diff -= 24 * time.Hour
	} else if diff < -12*time.Hour {
		diff += 24 * time.Hour
	}
	assert.LessOrEqual(t, diff.Abs(), 2*time.Second)
}
