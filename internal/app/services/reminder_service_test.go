package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ampro/academy-manager/internal/app/models"
	"github.com/ampro/academy-manager/internal/app/repositories"
	"github.com/ampro/academy-manager/internal/pkg/apperrors"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

func TestCheckEligibility(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	millisAgo := func(d time.Duration) *int64 {
		ms := now.Add(-d).UnixMilli()
		return &ms
	}

	tests := []struct {
		name     string
		lastSent *int64
		want     Eligibility
	}{
		{
			name:     "never sent",
			lastSent: nil,
			want:     Eligibility{Allowed: true},
		},
		{
			name:     "sent 25 hours ago",
			lastSent: millisAgo(25 * time.Hour),
			want:     Eligibility{Allowed: true},
		},
		{
			name:     "sent exactly 24 hours ago",
			lastSent: millisAgo(24 * time.Hour),
			want:     Eligibility{Allowed: true},
		},
		{
			name:     "sent 23 hours ago",
			lastSent: millisAgo(23 * time.Hour),
			want:     Eligibility{Allowed: false, HoursRemaining: 1},
		},
		{
			name:     "sent 30 minutes ago",
			lastSent: millisAgo(30 * time.Minute),
			want:     Eligibility{Allowed: false, HoursRemaining: 24},
		},
		{
			name:     "sent 23 and a half hours ago",
			lastSent: millisAgo(23*time.Hour + 30*time.Minute),
			want:     Eligibility{Allowed: false, HoursRemaining: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckEligibility(tt.lastSent, now); got != tt.want {
				t.Errorf("CheckEligibility() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func newReminderFixture(t *testing.T, now time.Time) (*reminderServiceImpl, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(kv.NewMemoryStore())
	svc := &reminderServiceImpl{
		studentRepo:  repos.Students,
		settingsRepo: repos.Settings,
		now:          func() time.Time { return now },
	}
	return svc, repos
}

func TestReminderSend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repos := newReminderFixture(t, now)

	added, err := repos.Students.Add(ctx, models.Student{
		Name:     "Asha Verma",
		WhatsApp: "+91 98765 43210",
		Standard: "7",
		TotalFee: 5000,
		PaidFee:  2000,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	resp, err := svc.Send(ctx, added.ID)
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if !strings.HasPrefix(resp.Link, "https://wa.me/919876543210?text=") {
		t.Errorf("Send() link = %q, want wa.me link for the cleaned number", resp.Link)
	}
	if !strings.Contains(resp.Message, "Asha Verma") || !strings.Contains(resp.Message, "3000") {
		t.Errorf("Send() message = %q, want name and due amount", resp.Message)
	}

	stored, err := repos.Students.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.LastReminderSent == nil || *stored.LastReminderSent != now.UnixMilli() {
		t.Errorf("LastReminderSent = %v, want %d", stored.LastReminderSent, now.UnixMilli())
	}
}

func TestReminderSendBlockedByCooldown(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repos := newReminderFixture(t, now)

	lastSent := now.Add(-2 * time.Hour).UnixMilli()
	added, err := repos.Students.Add(ctx, models.Student{
		Name:             "Rahul Singh",
		WhatsApp:         "9876543210",
		Standard:         "8",
		TotalFee:         4000,
		PaidFee:          1000,
		LastReminderSent: &lastSent,
	})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, err = svc.Send(ctx, added.ID)
	if !errors.Is(err, apperrors.ErrReminderCooldown) {
		t.Fatalf("Send() error = %v, want ErrReminderCooldown", err)
	}

	// A blocked send must not touch the stored timestamp.
	stored, err := repos.Students.Get(ctx, added.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.LastReminderSent == nil || *stored.LastReminderSent != lastSent {
		t.Errorf("LastReminderSent = %v, want unchanged %d", stored.LastReminderSent, lastSent)
	}
}

func TestReminderSendUnknownStudent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newReminderFixture(t, time.Now())

	_, err := svc.Send(ctx, "no-such-id")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("Send() error = %v, want ErrStudentNotFound", err)
	}
}

func TestReminderListPending(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc, repos := newReminderFixture(t, now)

	recent := now.Add(-1 * time.Hour).UnixMilli()
	seed := []models.Student{
		{Name: "Due Seven", WhatsApp: "1", Standard: "7", TotalFee: 5000, PaidFee: 2000},
		{Name: "Settled", WhatsApp: "2", Standard: "7", TotalFee: 3000, PaidFee: 3000},
		{Name: "Overpaid", WhatsApp: "3", Standard: "7", TotalFee: 1000, PaidFee: 2000},
		{Name: "Due Eight", WhatsApp: "4", Standard: "8", TotalFee: 2000, PaidFee: 500, LastReminderSent: &recent},
	}
	for _, st := range seed {
		if _, err := repos.Students.Add(ctx, st); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	entries, err := svc.ListPending(ctx, "")
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ListPending() returned %d entries, want 2", len(entries))
	}
	if entries[0].Name != "Due Seven" || !entries[0].Allowed {
		t.Errorf("entries[0] = %+v, want allowed entry for Due Seven", entries[0])
	}
	if entries[1].Name != "Due Eight" || entries[1].Allowed || entries[1].HoursRemaining != 23 {
		t.Errorf("entries[1] = %+v, want blocked entry with 23h remaining", entries[1])
	}

	filtered, err := svc.ListPending(ctx, "8")
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(filtered) != 1 || filtered[0].Name != "Due Eight" {
		t.Errorf("ListPending(standard=8) = %+v, want only Due Eight", filtered)
	}
}
