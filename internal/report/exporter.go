package report

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dstasiak/med-reminder/internal/domain"
	"github.com/dstasiak/med-reminder/internal/repository"
	"github.com/dstasiak/med-reminder/internal/service"
	"github.com/google/uuid"
)

// DefaultReportWindowDays is the lookback window when the caller gives no range.
const DefaultReportWindowDays = 7

// Exporter renders a profile's adherence over a period as a Markdown
// document, suitable for handing to a doctor.
type Exporter struct {
	profileRepo  repository.ProfileRepository
	medicineRepo repository.MedicineRepository
	scheduleRepo repository.ScheduleRepository
	adherence    service.AdherenceService
	now          func() time.Time
}

func NewExporter(
	profileRepo repository.ProfileRepository,
	medicineRepo repository.MedicineRepository,
	scheduleRepo repository.ScheduleRepository,
	adherence service.AdherenceService,
) *Exporter {
	return &Exporter{
		profileRepo:  profileRepo,
		medicineRepo: medicineRepo,
		scheduleRepo: scheduleRepo,
		adherence:    adherence,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Export builds the Markdown report. A zero from/to defaults to the last
// DefaultReportWindowDays days.
func (e *Exporter) Export(ctx context.Context, profileID uuid.UUID, from, to time.Time) (string, error) {
	profile, err := e.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}

	now := e.now()
	if from.IsZero() || to.IsZero() {
		from, to = now.AddDate(0, 0, -DefaultReportWindowDays), now
	}

	summary, err := e.adherence.Compute(ctx, profileID, from, to)
	if err != nil {
		return "", err
	}

	medicines, err := e.medicineRepo.ListByProfileID(ctx, profileID)
	if err != nil {
		return "", err
	}

	schedules, err := e.scheduleRepo.ListByDateRange(ctx, profileID, from, to)
	if err != nil {
		return "", err
	}

	return render(profile, summary, medicines, schedules, now), nil
}

func render(
	profile *domain.Profile,
	summary *domain.AdherenceResponse,
	medicines []domain.Medicine,
	schedules []domain.Schedule,
	now time.Time,
) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Medication report for %s\n\n", profile.Name)
	fmt.Fprintf(&b, "Period: %s to %s\n\n",
		summary.From.Format("2006-01-02"), summary.To.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Adherence: %d%%\n\n", summary.Adherence)
	fmt.Fprintf(&b, "- Taken: %d\n", summary.Taken)
	fmt.Fprintf(&b, "- Skipped: %d\n", summary.Skipped)
	fmt.Fprintf(&b, "- Overdue: %d\n", summary.Overdue)
	fmt.Fprintf(&b, "- Upcoming: %d\n\n", summary.Upcoming)

	if len(medicines) > 0 {
		b.WriteString("## Medicines\n\n")
		names := make(map[uuid.UUID]string, len(medicines))
		for _, m := range medicines {
			names[m.ID] = m.Name
			fmt.Fprintf(&b, "- **%s** (%s), %s, %d days", m.Name, m.Dose, frequencyLabel(&m), m.CourseDays)
			if m.DoctorName != "" {
				fmt.Fprintf(&b, ", prescribed by %s", m.DoctorName)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")

		if len(schedules) > 0 {
			b.WriteString("## Dose log\n\n")
			b.WriteString("| Time | Medicine | Status |\n")
			b.WriteString("|------|----------|--------|\n")
			sorted := make([]domain.Schedule, len(schedules))
			copy(sorted, schedules)
			sort.Slice(sorted, func(i, j int) bool {
				return sorted[i].ScheduledTime.Before(sorted[j].ScheduledTime)
			})
			for _, s := range sorted {
				name := names[s.MedicineID]
				if name == "" {
					name = "(deleted)"
				}
				fmt.Fprintf(&b, "| %s | %s | %s |\n",
					s.ScheduledTime.Format("2006-01-02 15:04"), name, s.DisplayStatus(now))
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "Generated at %s\n", now.Format(time.RFC3339))
	return b.String()
}

func frequencyLabel(m *domain.Medicine) string {
	if m.Instructions == domain.InstructionBeforeSleep {
		return "once daily before sleep"
	}
	switch m.FrequencyType {
	case domain.FrequencyEveryXHours:
		return fmt.Sprintf("every %d hours", m.FrequencyValue)
	default:
		return fmt.Sprintf("%d times a day", m.FrequencyValue)
	}
}
