// services/reminder_service.go
package services

import (
	"context"
	"fmt"

	"newday-backend/models"
	"newday-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageSender delivers one SMS and returns the provider message id.
type MessageSender interface {
	SendSMS(to, body string) (string, error)
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSid, authToken, from string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (t *TwilioSender) SendSMS(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

// ReminderService texts customers the evening before their visit.
type ReminderService struct {
	app    *App
	sender MessageSender
	logger *zap.Logger
	cron   *cron.Cron
}

func NewReminderService(app *App, sender MessageSender, logger *zap.Logger) *ReminderService {
	return &ReminderService{app: app, sender: sender, logger: logger}
}

// Start schedules SendDailyReminders on the given cron spec.
func (s *ReminderService) Start(spec string) error {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		s.SendDailyReminders(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule reminders %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	s.logger.Info("Reminder scheduler started", zap.String("spec", spec))
	return nil
}

// Stop halts the schedule and waits for a running batch to finish.
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

// SendDailyReminders texts every customer with a job tomorrow and returns one
// log entry per job.
func (s *ReminderService) SendDailyReminders(ctx context.Context) []models.ReminderLog {
	tomorrow := utils.BeginningOfDay(s.app.Now()).AddDate(0, 0, 1)
	day := utils.FormatDate(tomorrow)

	logs := []models.ReminderLog{}
	for _, job := range s.app.Scheduler.Upcoming(tomorrow, 0) {
		if ctx.Err() != nil {
			break
		}
		if job.Date != day {
			break
		}
		logs = append(logs, s.remind(job))
	}
	s.logger.Info("Daily reminder processing completed", zap.String("date", day), zap.Int("jobs", len(logs)))
	return logs
}

func (s *ReminderService) remind(job models.Job) models.ReminderLog {
	entry := models.ReminderLog{JobID: job.ID, CustomerID: job.CustomerID, SentAt: s.app.Now()}

	customer, ok := s.app.Directory.Get(job.CustomerID)
	if !ok {
		entry.Status = models.ReminderSkipped
		entry.ErrorMessage = "customer not found"
		return entry
	}
	to, ok := utils.SMSNumber(firstNonEmpty(job.Phone, customer.Phone))
	if !ok {
		entry.Status = models.ReminderSkipped
		entry.ErrorMessage = "no valid phone number"
		s.logger.Debug("reminder skipped", zap.String("job", job.ID), zap.String("reason", entry.ErrorMessage))
		return entry
	}

	entry.To = to
	entry.Message = fmt.Sprintf("Hi %s, this is %s. Reminder: your %s service is scheduled for %s at %s. Questions? Call %s.",
		customer.Name, s.app.Business.Name, job.ServiceType, job.Date, utils.ClockLabel(job.Time), s.app.Business.Phone)

	sid, err := s.sender.SendSMS(to, entry.Message)
	if err != nil {
		entry.Status = models.ReminderFailed
		entry.ErrorMessage = err.Error()
		s.logger.Warn("Failed to send reminder", zap.String("job", job.ID), zap.String("to", to), zap.Error(err))
		return entry
	}
	entry.Status = models.ReminderSent
	entry.MessageSID = sid
	s.logger.Info("Reminder sent", zap.String("job", job.ID), zap.String("to", to), zap.String("sid", sid))
	return entry
}
