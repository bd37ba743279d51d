package timezone_test

import (
	"testing"
	"time"
	"todoboard/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	// Test Now() function
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	// Test GetLocation()
	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestParseISO(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "utc with fraction",
			value: "2025-03-01T10:20:30.123456Z",
			want:  time.Date(2025, 3, 1, 10, 20, 30, 123456000, time.UTC),
		},
		{
			name:  "offset without fraction",
			value: "2025-03-01T10:20:30-03:00",
			want:  time.Date(2025, 3, 1, 13, 20, 30, 0, time.UTC),
		},
		{
			name:    "garbage",
			value:   "yesterday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseISO(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.value)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !got.Equal(tt.want) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseISOWithoutOffset(t *testing.T) {
	got, err := timezone.ParseISO("2025-03-01T10:20:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Location() != timezone.GetLocation() {
		t.Errorf("expected app location, got %s", got.Location())
	}
}
