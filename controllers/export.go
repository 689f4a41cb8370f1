package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/services"

	"github.com/gin-gonic/gin"
)

// ExportScoutPerformance streams the per-scout performance metrics as CSV.
func ExportScoutPerformance(c *gin.Context) {
	timeFilter := c.DefaultQuery("range", services.DateFilterAll)

	views, reviews, assignments, err := loadAnalyticsInput()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load export data"})
		return
	}

	snapshot := services.ComputeAnalytics(views, reviews, assignments, timeFilter, time.Now())

	data, err := services.ExportScoutPerformanceCSV(snapshot.Scouts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render export"})
		return
	}

	writeCSV(c, "scout-performance", data)
}

// ExportSummary streams the analytics summary as CSV.
func ExportSummary(c *gin.Context) {
	timeFilter := c.DefaultQuery("range", services.DateFilterAll)

	views, reviews, assignments, err := loadAnalyticsInput()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load export data"})
		return
	}

	snapshot := services.ComputeAnalytics(views, reviews, assignments, timeFilter, time.Now())

	data, err := services.ExportSummaryCSV(snapshot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render export"})
		return
	}

	writeCSV(c, "analytics-summary", data)
}

func writeCSV(c *gin.Context, name string, data []byte) {
	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
