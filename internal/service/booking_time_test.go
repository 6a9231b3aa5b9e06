package service

import (
	"errors"
	"testing"
	"time"
)

func TestResolveAppointmentStart_Reference(t *testing.T) {
	got, err := ResolveAppointmentStart("10.00 - 11.00 AM", "05-06-2024", time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveAppointmentStart_ConvertsLocalToUTC(t *testing.T) {
	dhaka := time.FixedZone("BST", 6*60*60)

	got, err := ResolveAppointmentStart("10.00 - 11.00 AM", "05-06-2024", dhaka)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.June, 5, 4, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", got.Location())
	}
}

func TestResolveSlotStart(t *testing.T) {
	tests := []struct {
		label  string
		hour   int
		minute int
	}{
		{"10.00 - 11.00 AM", 10, 0},
		{"9.30 - 10.30 AM", 9, 30},
		{"11.00 - 12.00 PM", 11, 0},
		{"12.00 - 1.00 PM", 12, 0},
		{"1.00 - 2.00 PM", 13, 0},
		{"9.00 - 10.00 PM", 21, 0},
		{"11.30 - 1.00 PM", 11, 30},
		{"12.00 - 12.30 AM", 0, 0},
		{"02.00 PM - 03.00 PM", 14, 0},
		{"11.00 am - 12.00 pm", 11, 0},
		{"14.00 - 15.00", 14, 0},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			hour, minute, err := ResolveSlotStart(tt.label)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if hour != tt.hour || minute != tt.minute {
				t.Errorf("expected %02d:%02d, got %02d:%02d", tt.hour, tt.minute, hour, minute)
			}
		})
	}
}

func TestResolveSlotStart_Malformed(t *testing.T) {
	labels := []string{
		"",
		"10.00",
		"10.00-11.00 AM",
		"10:00 - 11:00 AM",
		"10.0 - 11.00 AM",
		"ab.cd - 11.00 AM",
		"10.00 - 11.00 XM",
		"13.00 - 2.00 PM",
		"10.75 - 11.00 AM",
		"24.00 - 25.00",
		"11.00 - 10.00 AM",
		"10.00 - 11.00 AM - 12.00 PM",
		"-1.00 - 2.00 PM",
	}

	for _, label := range labels {
		if _, _, err := ResolveSlotStart(label); !errors.Is(err, ErrInvalidSlotLabel) {
			t.Errorf("%q: expected ErrInvalidSlotLabel, got %v", label, err)
		}
	}
}

func TestParseBookingDate(t *testing.T) {
	valid := map[string]time.Time{
		"05-06-2024": time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		"29-02-2024": time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
	}
	for input, want := range valid {
		got, err := ParseBookingDate(input)
		if err != nil {
			t.Errorf("%q: unexpected error %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: expected %v, got %v", input, want, got)
		}
	}

	invalid := []string{"", "5-6-2024", "2024-06-05", "31-02-2024", "29-02-2023", "05/06/2024", "05-13-2024", "aa-bb-cccc"}
	for _, input := range invalid {
		if _, err := ParseBookingDate(input); !errors.Is(err, ErrInvalidBookingDate) {
			t.Errorf("%q: expected ErrInvalidBookingDate, got %v", input, err)
		}
	}
}

func TestResolveAppointmentStart_PropagatesErrors(t *testing.T) {
	if _, err := ResolveAppointmentStart("10.00 - 11.00 AM", "2024-06-05", time.UTC); !errors.Is(err, ErrInvalidBookingDate) {
		t.Errorf("expected date error, got %v", err)
	}
	if _, err := ResolveAppointmentStart("morning", "05-06-2024", time.UTC); !errors.Is(err, ErrInvalidSlotLabel) {
		t.Errorf("expected slot error, got %v", err)
	}
}
