package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/app/repositories"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/pkg/whatsapp"
)

// ReminderCooldown is the window after a send during which re-sending is blocked.
const ReminderCooldown = 24 * time.Hour

// Eligibility is the result of the cooldown predicate
type Eligibility struct {
	Allowed bool
	// HoursRemaining is the whole hours left in the window, for display only.
	HoursRemaining int
}

// CheckEligibility applies the cooldown rule: a reminder is blocked when a
// prior send exists and less than the full window has elapsed since it.
// lastSent is an epoch-millisecond timestamp; nil means never sent.
func CheckEligibility(lastSent *int64, now time.Time) Eligibility {
	if lastSent == nil {
		return Eligibility{Allowed: true}
	}
	elapsed := now.Sub(time.UnixMilli(*lastSent))
	if elapsed >= ReminderCooldown {
		return Eligibility{Allowed: true}
	}
	hoursElapsed := int(elapsed.Hours())
	return Eligibility{
		Allowed:        false,
		HoursRemaining: int(ReminderCooldown.Hours()) - hoursElapsed,
	}
}

// ReminderService lists students with pending dues and records reminder sends
type ReminderService interface {
	ListPending(ctx context.Context, standard string) ([]dto.ReminderEntry, error)
	Send(ctx context.Context, studentID string) (*dto.SendReminderResponse, error)
}

type reminderServiceImpl struct {
	studentRepo  *repositories.StudentRepository
	settingsRepo *repositories.SettingsRepository
	now          func() time.Time
}

// NewReminderService creates a new reminder service instance
func NewReminderService(studentRepo *repositories.StudentRepository, settingsRepo *repositories.SettingsRepository) ReminderService {
	return &reminderServiceImpl{
		studentRepo:  studentRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
}

// ListPending returns students with a strictly positive due, optionally
// restricted to one class, each with its current cooldown state.
func (s *reminderServiceImpl) ListPending(ctx context.Context, standard string) ([]dto.ReminderEntry, error) {
	students, err := s.studentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entries := make([]dto.ReminderEntry, 0)
	for _, st := range students {
		if st.Due() <= 0 {
			continue
		}
		if standard != "" && st.Standard != standard {
			continue
		}
		eligibility := CheckEligibility(st.LastReminderSent, now)
		entries = append(entries, dto.ReminderEntry{
			ID:             st.ID,
			Name:           st.Name,
			Standard:       st.Standard,
			WhatsApp:       st.WhatsApp,
			DueAmount:      st.Due(),
			Allowed:        eligibility.Allowed,
			HoursRemaining: eligibility.HoursRemaining,
			LastSent:       st.LastReminderSent,
		})
	}
	return entries, nil
}

// Send checks eligibility, records the send timestamp and returns the deep
// link that opens the pre-filled chat. The timestamp mutation happens only
// after the predicate allows; a blocked send changes nothing.
func (s *reminderServiceImpl) Send(ctx context.Context, studentID string) (*dto.SendReminderResponse, error) {
	student, err := s.studentRepo.Get(ctx, studentID)
	if err != nil {
		return nil, err
	}

	eligibility := CheckEligibility(student.LastReminderSent, s.now())
	if !eligibility.Allowed {
		return nil, apperrors.NewCustomError(apperrors.ErrReminderCooldown,
			fmt.Sprintf("reminder already sent, wait %dh", eligibility.HoursRemaining)).
			WithDetails(map[string]interface{}{"hoursRemaining": eligibility.HoursRemaining})
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	message := whatsapp.ReminderMessage(student.Name, settings.AcademyName, student.Due())
	link := whatsapp.Link(student.WhatsApp, message)

	sentAt := s.now().UnixMilli()
	student.LastReminderSent = &sentAt
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return &dto.SendReminderResponse{Link: link, Message: message}, nil
}
