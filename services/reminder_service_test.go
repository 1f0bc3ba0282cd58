package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"newday-backend/models"

	"go.uber.org/zap"
)

type fakeSender struct {
	sent []string
	fail map[string]bool
}

func (f *fakeSender) SendSMS(to, body string) (string, error) {
	if f.fail[to] {
		return "", fmt.Errorf("carrier rejected %s", to)
	}
	f.sent = append(f.sent, to+": "+body)
	return fmt.Sprintf("SM%d", len(f.sent)), nil
}

func TestSendDailyReminders(t *testing.T) {
	app, _ := newTestApp(t)
	ok := mustCustomer(t, app, "John Smith", "201-555-1111")
	noPhone := mustCustomer(t, app, "Jane Doe", "")
	bounce := mustCustomer(t, app, "Mary Jones", "(973) 555-2222")

	// fixedNow is 2024-06-12, so reminders cover 2024-06-13.
	mustPlace(t, app, ok.ID, "2024-06-13", "09:30")
	mustPlace(t, app, noPhone.ID, "2024-06-13", "10:00")
	mustPlace(t, app, bounce.ID, "2024-06-13", "11:00")
	mustPlace(t, app, ok.ID, "2024-06-14", "09:30")
	mustPlace(t, app, ok.ID, "2024-06-12", "16:00")

	sender := &fakeSender{fail: map[string]bool{"+19735552222": true}}
	svc := NewReminderService(app, sender, zap.NewNop())
	logs := svc.SendDailyReminders(context.Background())

	if len(logs) != 3 {
		t.Fatalf("expected 3 log entries, got %d", len(logs))
	}
	want := []string{models.ReminderSent, models.ReminderSkipped, models.ReminderFailed}
	for i, w := range want {
		if logs[i].Status != w {
			t.Errorf("log %d status = %s, want %s", i, logs[i].Status, w)
		}
	}
	if len(sender.sent) != 1 || !strings.HasPrefix(sender.sent[0], "+12015551111: Hi John Smith") {
		t.Fatalf("unexpected messages %v", sender.sent)
	}
	if !strings.Contains(sender.sent[0], "2024-06-13 at 9:30 AM") {
		t.Fatalf("message missing date and time: %s", sender.sent[0])
	}
	if logs[0].MessageSID != "SM1" {
		t.Fatalf("sid = %q", logs[0].MessageSID)
	}
}
