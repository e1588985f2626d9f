package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/google/uuid"
)

func testMedicine(freqType domain.FrequencyType, freqValue, courseDays int, instructions domain.Instruction, start time.Time) *domain.Medicine {
	return &domain.Medicine{
		ID:             uuid.New(),
		ProfileID:      uuid.New(),
		Name:           "Amoxicillin",
		Dose:           "500mg",
		CourseDays:     courseDays,
		Instructions:   instructions,
		FrequencyType:  freqType,
		FrequencyValue: freqValue,
		StartDate:      start,
	}
}

func mustWindow(t *testing.T, wake, sleep string) domain.WakingWindow {
	t.Helper()
	window, err := domain.ResolveWakingWindow(wake, sleep)
	if err != nil {
		t.Fatalf("ResolveWakingWindow(%q, %q) error = %v", wake, sleep, err)
	}
	return window
}

func TestGenerator_TimesADay_EvenDistribution(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	window := mustWindow(t, "07:00", "22:00")

	tests := []struct {
		name      string
		freq      int
		wantTimes []string // HH:MM of each dose within a day
	}{
		{
			name:      "three times a day over 15h window",
			freq:      3,
			wantTimes: []string{"07:00", "12:00", "17:00"},
		},
		{
			name:      "once a day fires at wake hour",
			freq:      1,
			wantTimes: []string{"07:00"},
		},
		{
			name:      "four times a day gets minute precision",
			freq:      4,
			wantTimes: []string{"07:00", "10:45", "14:30", "18:15"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			medicine := testMedicine(domain.FrequencyTimesADay, tt.freq, 5, domain.InstructionAfterFood, start)
			schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, window)

			if len(schedules) != tt.freq*5 {
				t.Fatalf("generated %d schedules, want %d", len(schedules), tt.freq*5)
			}

			for day := 0; day < 5; day++ {
				for i, want := range tt.wantTimes {
					s := schedules[day*tt.freq+i]
					if got := s.ScheduledTime.Format("15:04"); got != want {
						t.Errorf("day %d dose %d at %s, want %s", day, i, got, want)
					}
					wantDate := start.AddDate(0, 0, day)
					if s.ScheduledTime.Day() != wantDate.Day() {
						t.Errorf("day %d dose %d on calendar day %d, want %d", day, i, s.ScheduledTime.Day(), wantDate.Day())
					}
				}
			}
		})
	}
}

func TestGenerator_TimesADay_ZeroFrequencyEmitsNothing(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyTimesADay, 0, 7, domain.InstructionWithFood, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))
	if len(schedules) != 0 {
		t.Errorf("generated %d schedules for zero frequency, want 0", len(schedules))
	}
}

func TestGenerator_EveryXHours_Truncate(t *testing.T) {
	// Starting at 06:00 with X=8: doses at 06:00, 14:00, 22:00 every day.
	start := time.Date(2024, 5, 1, 6, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyEveryXHours, 8, 2, domain.InstructionBeforeFood, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))
	if len(schedules) != 6 {
		t.Fatalf("generated %d schedules, want 6", len(schedules))
	}

	wantHours := []int{6, 14, 22}
	for day := 0; day < 2; day++ {
		for i, wantHour := range wantHours {
			s := schedules[day*3+i]
			if s.ScheduledTime.Hour() != wantHour {
				t.Errorf("day %d dose %d at hour %d, want %d", day, i, s.ScheduledTime.Hour(), wantHour)
			}
			if s.ScheduledTime.Minute() != 0 {
				t.Errorf("day %d dose %d minute = %d, want 0", day, i, s.ScheduledTime.Minute())
			}
			if s.ScheduledTime.Day() != 1+day {
				t.Errorf("day %d dose %d on calendar day %d, want %d", day, i, s.ScheduledTime.Day(), 1+day)
			}
		}
	}
}

func TestGenerator_EveryXHours_TruncateDropsMidnightCrossing(t *testing.T) {
	// Starting at 20:00 with X=6: candidates 20:00, 02:00(+1d), 08:00(+1d),
	// 14:00(+1d); only the first survives truncation, each day.
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyEveryXHours, 6, 3, domain.InstructionBeforeFood, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))
	if len(schedules) != 3 {
		t.Fatalf("generated %d schedules, want 3", len(schedules))
	}
	for i, s := range schedules {
		if s.ScheduledTime.Hour() != 20 {
			t.Errorf("dose %d at hour %d, want 20", i, s.ScheduledTime.Hour())
		}
	}
}

func TestGenerator_EveryXHours_WrapCarriesCrossing(t *testing.T) {
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyEveryXHours, 6, 1, domain.InstructionBeforeFood, start)

	schedules := NewGenerator(BoundaryWrap).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))
	if len(schedules) != 4 {
		t.Fatalf("generated %d schedules, want 4", len(schedules))
	}

	// Sorted output: the three wrapped doses land on May 2 before the
	// anchor dose's next-day sibling would.
	want := []struct {
		day  int
		hour int
	}{
		{1, 20},
		{2, 2},
		{2, 8},
		{2, 14},
	}
	for i, w := range want {
		s := schedules[i]
		if s.ScheduledTime.Day() != w.day || s.ScheduledTime.Hour() != w.hour {
			t.Errorf("dose %d at day %d hour %d, want day %d hour %d",
				i, s.ScheduledTime.Day(), s.ScheduledTime.Hour(), w.day, w.hour)
		}
	}
}

func TestGenerator_BeforeSleep_IgnoresFrequency(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	window := mustWindow(t, "07:00", "22:30")

	// frequencyValue 5 must not matter: exactly one dose per day at sleep time.
	medicine := testMedicine(domain.FrequencyTimesADay, 5, 4, domain.InstructionBeforeSleep, start)
	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, window)

	if len(schedules) != 4 {
		t.Fatalf("generated %d schedules, want 4", len(schedules))
	}
	for i, s := range schedules {
		if s.ScheduledTime.Hour() != 22 || s.ScheduledTime.Minute() != 30 {
			t.Errorf("dose %d at %s, want 22:30", i, s.ScheduledTime.Format("15:04"))
		}
		if s.ScheduledTime.Day() != 1+i {
			t.Errorf("dose %d on calendar day %d, want %d", i, s.ScheduledTime.Day(), 1+i)
		}
	}
}

func TestGenerator_BeforeSleep_PastMidnightWindow(t *testing.T) {
	// Sleep at 01:00 with wake 07:00: the dose normalizes past midnight
	// into the following calendar day.
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyTimesADay, 1, 2, domain.InstructionBeforeSleep, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "01:00"))
	if len(schedules) != 2 {
		t.Fatalf("generated %d schedules, want 2", len(schedules))
	}
	first := schedules[0].ScheduledTime
	if first.Day() != 2 || first.Hour() != 1 {
		t.Errorf("first dose at day %d hour %d, want day 2 hour 1", first.Day(), first.Hour())
	}
}

func TestGenerator_CourseSpansDistinctDays(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyTimesADay, 2, 7, domain.InstructionAfterFood, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))

	days := make(map[string]struct{})
	for _, s := range schedules {
		days[s.ScheduledTime.Format("2006-01-02")] = struct{}{}
	}
	if len(days) != 7 {
		t.Errorf("course spans %d distinct days, want 7", len(days))
	}
	if _, ok := days["2024-05-01"]; !ok {
		t.Error("course does not start on the start date's day")
	}
}

func TestGenerator_FreshPendingSchedules(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyTimesADay, 3, 2, domain.InstructionAfterFood, start)

	schedules := NewGenerator(BoundaryTruncate).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))

	seen := make(map[uuid.UUID]struct{})
	for i, s := range schedules {
		if s.ID == uuid.Nil {
			t.Errorf("schedule %d has nil id", i)
		}
		if _, dup := seen[s.ID]; dup {
			t.Errorf("schedule %d reuses id %s", i, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.Status != domain.DoseStatusPending {
			t.Errorf("schedule %d status = %s, want pending", i, s.Status)
		}
		if s.ActualTakenTime != nil {
			t.Errorf("schedule %d has ActualTakenTime set", i)
		}
		if s.MedicineID != medicine.ID || s.ProfileID != medicine.ProfileID {
			t.Errorf("schedule %d has wrong ownership", i)
		}
	}
}

func TestGenerator_OutputIsOrdered(t *testing.T) {
	start := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	medicine := testMedicine(domain.FrequencyEveryXHours, 6, 5, domain.InstructionBeforeFood, start)

	schedules := NewGenerator(BoundaryWrap).Generate(context.Background(), medicine, mustWindow(t, "07:00", "22:00"))
	for i := 1; i < len(schedules); i++ {
		if schedules[i].ScheduledTime.Before(schedules[i-1].ScheduledTime) {
			t.Fatalf("schedules out of order at index %d", i)
		}
	}
}
