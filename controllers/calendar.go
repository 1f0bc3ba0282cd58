package controllers

import (
	"net/http"
	"strconv"

	"newday-backend/services"
	"newday-backend/utils"

	"github.com/gin-gonic/gin"
)

const defaultUpcomingLimit = 15

// CalendarResponse is one period of the calendar plus the anchors the
// previous/next buttons should request.
type CalendarResponse struct {
	View     services.View       `json:"view"`
	Label    string              `json:"label"`
	Start    string              `json:"start"`
	End      string              `json:"end"`
	Previous string              `json:"previous"`
	Next     string              `json:"next"`
	Today    string              `json:"today"`
	Week     *services.WeekGrid  `json:"week,omitempty"`
	Month    *services.MonthGrid `json:"month,omitempty"`
}

type CalendarController struct {
	app *services.App
}

func NewCalendarController(app *services.App) *CalendarController {
	return &CalendarController{app: app}
}

// GetCalendar renders ?view=week|month anchored on ?date= (default today),
// moved by ?shift= periods.
func (cc *CalendarController) GetCalendar(c *gin.Context) {
	view, err := services.ParseView(c.Query("view"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	cal := cc.app.NewCalendar(view)
	if raw := c.Query("date"); raw != "" {
		anchor, err := utils.ParseDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		cal.SetAnchor(anchor)
	}
	if raw := c.Query("shift"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "shift must be an integer")
			return
		}
		cal.Shift(n)
	}

	resp := CalendarResponse{
		View:  view,
		Label: cal.Label(),
		Start: utils.FormatDate(cal.PeriodStart()),
		End:   utils.FormatDate(cal.PeriodEnd()),
		Today: utils.FormatDate(utils.BeginningOfDay(cc.app.Now())),
	}
	if view == services.MonthView {
		grid := cc.app.Scheduler.MonthGrid(cal)
		resp.Month = &grid
	} else {
		grid := cc.app.Scheduler.WeekGrid(cal)
		resp.Week = &grid
	}

	cal.Previous()
	resp.Previous = utils.FormatDate(cal.PeriodStart())
	cal.Shift(2)
	resp.Next = utils.FormatDate(cal.PeriodStart())

	c.JSON(http.StatusOK, resp)
}

// GetUpcoming lists the next jobs from ?from= (default today), ?limit= (default 15)
func (cc *CalendarController) GetUpcoming(c *gin.Context) {
	from := cc.app.Now()
	if raw := c.Query("from"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		from = d
	}

	limit := defaultUpcomingLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, cc.app.Scheduler.Upcoming(from, limit))
}
