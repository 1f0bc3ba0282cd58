// controllers/reminder.go
package controllers

import (
	"net/http"

	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController exposes the next-day SMS run for manual triggering.
// reminders is nil when Twilio is not configured.
type ReminderController struct {
	reminders *services.ReminderService
}

func NewReminderController(reminders *services.ReminderService) *ReminderController {
	return &ReminderController{reminders: reminders}
}

// RunReminders texts every customer with a job tomorrow and returns the log
func (rc *ReminderController) RunReminders(c *gin.Context) {
	if rc.reminders == nil {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "SMS reminders are not configured")
		return
	}
	logs := rc.reminders.SendDailyReminders(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"count": len(logs), "reminders": logs})
}
