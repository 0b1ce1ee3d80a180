package dates

import (
	"errors"
	"testing"
	"time"

	"github.com/mensabot/mensa-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveKeyword(t *testing.T) {
	wednesday := time.Date(2024, 1, 3, 10, 15, 0, 0, time.UTC)
	sunday := time.Date(2024, 1, 7, 10, 15, 0, 0, time.UTC)

	tests := []struct {
		name    string
		keyword string
		today   time.Time
		want    time.Time
		wantOK  bool
	}{
		{name: "Should resolve today", keyword: "today", today: wednesday, want: day(2024, 1, 3), wantOK: true},
		{name: "Should resolve tomorrow", keyword: "tomorrow", today: wednesday, want: day(2024, 1, 4), wantOK: true},
		{name: "Should be case insensitive", keyword: "  Tomorrow ", today: wednesday, want: day(2024, 1, 4), wantOK: true},
		{name: "Should resolve friday into the following week", keyword: "friday", today: wednesday, want: day(2024, 1, 12), wantOK: true},
		{name: "Should resolve monday into the following week", keyword: "monday", today: wednesday, want: day(2024, 1, 8), wantOK: true},
		{name: "Should resolve a passed weekday into the following week", keyword: "tuesday", today: wednesday, want: day(2024, 1, 9), wantOK: true},
		{name: "Should resolve the same weekday a week ahead", keyword: "wednesday", today: wednesday, want: day(2024, 1, 10), wantOK: true},
		{name: "Should resolve monday on sunday to the next day", keyword: "monday", today: sunday, want: day(2024, 1, 8), wantOK: true},
		{name: "Should resolve german alias", keyword: "freitag", today: wednesday, want: day(2024, 1, 12), wantOK: true},
		{name: "Should reject saturday", keyword: "saturday", today: wednesday, wantOK: false},
		{name: "Should reject unknown keyword", keyword: "soon", today: wednesday, wantOK: false},
		{name: "Should reject a date string", keyword: "12.01.2024", today: wednesday, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveKeyword(tt.keyword, tt.today)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "Should parse dd.mm.yyyy", input: "24.12.2024", want: day(2024, 12, 24)},
		{name: "Should parse single digits", input: "2.1.2024", want: day(2024, 1, 2)},
		{name: "Should trim spaces", input: " 02.01.2024 ", want: day(2024, 1, 2)},
		{name: "Should reject iso format", input: "2024-01-02", wantErr: true},
		{name: "Should reject impossible date", input: "31.02.2024", wantErr: true},
		{name: "Should reject free text", input: "next week", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				var formatErr *domain.DateFormatError
				require.True(t, errors.As(err, &formatErr))
				assert.Equal(t, tt.input, formatErr.Input)
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestResolveNextAvailableDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	cutover := TimeOfDay{Hour: 14, Minute: 30}
	days := []time.Time{day(2024, 1, 2), day(2024, 1, 3), day(2024, 1, 5)}

	tests := []struct {
		name   string
		days   []time.Time
		now    time.Time
		want   time.Time
		wantOK bool
	}{
		{
			name:   "Should return today one minute before cutover",
			days:   days,
			now:    time.Date(2024, 1, 3, 14, 29, 0, 0, berlin),
			want:   day(2024, 1, 3),
			wantOK: true,
		},
		{
			name:   "Should skip today one minute after cutover",
			days:   days,
			now:    time.Date(2024, 1, 3, 14, 31, 0, 0, berlin),
			want:   day(2024, 1, 5),
			wantOK: true,
		},
		{
			name:   "Should skip today exactly at cutover",
			days:   days,
			now:    time.Date(2024, 1, 3, 14, 30, 0, 0, berlin),
			want:   day(2024, 1, 5),
			wantOK: true,
		},
		{
			name:   "Should return first future day when today is missing",
			days:   days,
			now:    time.Date(2024, 1, 4, 8, 0, 0, 0, berlin),
			want:   day(2024, 1, 5),
			wantOK: true,
		},
		{
			name:   "Should use the local calendar day near midnight",
			days:   days,
			now:    time.Date(2024, 1, 3, 0, 30, 0, 0, berlin),
			want:   day(2024, 1, 3),
			wantOK: true,
		},
		{
			name:   "Should return none when every day is past",
			days:   days,
			now:    time.Date(2024, 1, 5, 15, 0, 0, 0, berlin),
			wantOK: false,
		},
		{
			name:   "Should return none for no candidates",
			days:   nil,
			now:    time.Date(2024, 1, 5, 9, 0, 0, 0, berlin),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveNextAvailableDay(tt.days, tt.now, cutover)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNextTrigger(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	at := TimeOfDay{Hour: 14, Minute: 30}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "Should return today if time hasn't passed",
			now:  time.Date(2024, 1, 3, 10, 0, 0, 0, berlin),
			want: time.Date(2024, 1, 3, 14, 30, 0, 0, berlin),
		},
		{
			name: "Should return next day if time has passed",
			now:  time.Date(2024, 1, 3, 15, 0, 0, 0, berlin),
			want: time.Date(2024, 1, 4, 14, 30, 0, 0, berlin),
		},
		{
			name: "Should return next day exactly at trigger time",
			now:  time.Date(2024, 1, 3, 14, 30, 0, 0, berlin),
			want: time.Date(2024, 1, 4, 14, 30, 0, 0, berlin),
		},
		{
			name: "Should compute in local time when now is UTC",
			now:  time.Date(2024, 1, 3, 13, 45, 0, 0, time.UTC), // 14:45 in Berlin
			want: time.Date(2024, 1, 4, 14, 30, 0, 0, berlin),
		},
		{
			name: "Should keep wall clock across spring forward",
			now:  time.Date(2024, 3, 30, 15, 0, 0, 0, berlin),
			want: time.Date(2024, 3, 31, 14, 30, 0, 0, berlin),
		},
		{
			name: "Should keep wall clock across fall back",
			now:  time.Date(2024, 10, 26, 15, 0, 0, 0, berlin),
			want: time.Date(2024, 10, 27, 14, 30, 0, 0, berlin),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextTrigger(tt.now, berlin, at)

			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
			assert.Equal(t, 14, got.In(berlin).Hour())
			assert.Equal(t, 30, got.In(berlin).Minute())
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 5}, got)
	assert.Equal(t, "09:05", got.String())

	_, err = ParseTimeOfDay("25:00")
	require.Error(t, err)

	_, err = ParseTimeOfDay("invalid")
	require.Error(t, err)
}
