package controller

import (
	"fmt"
	"strconv"
	"time"

	"career_path_backend/internal/service"
	"career_path_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Analytics *service.AnalyticsService
}

func NewAnalyticsController(analytics *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

func (ctl *AnalyticsController) Overview(c *gin.Context) {
	overview, err := ctl.Analytics.Overview()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, overview)
}

func (ctl *AnalyticsController) Tests(c *gin.Context) {
	report, err := ctl.Analytics.TestReport()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, report)
}

func (ctl *AnalyticsController) Users(c *gin.Context) {
	report, err := ctl.Analytics.UserReport()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, report)
}

func (ctl *AnalyticsController) Performance(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	report, err := ctl.Analytics.PerformanceReport(days)
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	util.Success(c, report)
}

// Export streams results or users as a CSV or JSON download.
func (ctl *AnalyticsController) Export(c *gin.Context) {
	kind := c.DefaultQuery("type", "results")
	format := c.DefaultQuery("format", "csv")
	if kind != "results" && kind != "users" {
		util.BadRequest(c, "type must be results or users")
		return
	}
	if format != "csv" && format != "json" {
		util.BadRequest(c, "format must be csv or json")
		return
	}

	contentType := "text/csv"
	if format == "json" {
		contentType = "application/json"
	}
	filename := fmt.Sprintf("%s-%s.%s", kind, time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	var err error
	if kind == "users" {
		err = ctl.Analytics.ExportUsers(c.Writer, format)
	} else {
		err = ctl.Analytics.ExportResults(c.Writer, format)
	}
	if err != nil {
		util.LogInternalError(c, err)
	}
}
