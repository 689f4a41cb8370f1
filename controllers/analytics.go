package controllers

import (
	"net/http"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/config"
	"github.com/Truthtechno/LockerRoom-sub003/models"
	"github.com/Truthtechno/LockerRoom-sub003/services"

	"github.com/gin-gonic/gin"
)

// loadAnalyticsInput fetches everything the aggregation engine needs in one
// pass: all live submissions plus their reviews and assignments.
func loadAnalyticsInput() ([]services.SubmissionView, []models.Review, []models.ReviewAssignment, error) {
	var submissions []models.Submission
	if err := config.DB.Preload("User").Preload("User.StudentProfile").
		Preload("Reviews").Preload("FinalFeedback").
		Where("deleted_at IS NULL").
		Find(&submissions).Error; err != nil {
		return nil, nil, nil, err
	}

	var reviews []models.Review
	if err := config.DB.Preload("Scout").Find(&reviews).Error; err != nil {
		return nil, nil, nil, err
	}

	var assignments []models.ReviewAssignment
	if err := config.DB.Preload("Scout").Find(&assignments).Error; err != nil {
		return nil, nil, nil, err
	}

	return services.BuildSubmissionViews(submissions, 0), reviews, assignments, nil
}

// GetAnalytics returns the full analytics snapshot for the scout admin
// dashboard. The optional range parameter accepts all|7d|30d|year.
func GetAnalytics(c *gin.Context) {
	timeFilter := c.DefaultQuery("range", services.DateFilterAll)

	views, reviews, assignments, err := loadAnalyticsInput()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics data"})
		return
	}

	snapshot := services.ComputeAnalytics(views, reviews, assignments, timeFilter, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"analytics": snapshot,
	})
}

// GetDashboardStats returns dashboard statistics, shaped by role: students
// see their own submission progress, scouts their queue counters, admins the
// system overview.
func GetDashboardStats(c *gin.Context) {
	userID, okUser := currentUserID(c)
	roleID, okRole := currentRoleID(c)
	if !okUser || !okRole {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication context missing",
		})
		return
	}

	var stats map[string]interface{}
	switch roleID {
	case models.RoleScoutAdmin:
		stats = getAdminDashboard()
	case models.RoleScout:
		stats = getScoutDashboard(userID)
	default:
		stats = getStudentDashboard(userID)
	}

	if stats == nil {
		stats = make(map[string]interface{})
	}
	stats["current_date"] = time.Now().Format("2006-01-02")

	c.JSON(http.StatusOK, gin.H{
		"stats": stats,
	})
}

func getStudentDashboard(userID int) map[string]interface{} {
	stats := make(map[string]interface{})

	var counts struct {
		Total     int64 `json:"total"`
		InReview  int64 `json:"in_review"`
		Finalized int64 `json:"finalized"`
		Rejected  int64 `json:"rejected"`
	}

	config.DB.Model(&models.Submission{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Count(&counts.Total)
	config.DB.Model(&models.Submission{}).
		Where("user_id = ? AND status = ? AND deleted_at IS NULL", userID, models.SubmissionStatusInReview).
		Count(&counts.InReview)
	config.DB.Model(&models.Submission{}).
		Where("user_id = ? AND status = ? AND deleted_at IS NULL", userID, models.SubmissionStatusFinalized).
		Count(&counts.Finalized)
	config.DB.Model(&models.Submission{}).
		Where("user_id = ? AND status = ? AND deleted_at IS NULL", userID, models.SubmissionStatusRejected).
		Count(&counts.Rejected)

	stats["my_submissions"] = counts

	var recent []map[string]interface{}
	config.DB.Table("submissions s").
		Select(`s.submission_id, s.submission_number, s.status, s.created_at,
                ff.final_rating, ff.published_at`).
		Joins("LEFT JOIN final_feedback ff ON ff.submission_id = s.submission_id").
		Where("s.user_id = ? AND s.deleted_at IS NULL", userID).
		Order("s.created_at DESC").
		Limit(5).
		Scan(&recent)
	stats["recent_submissions"] = recent

	var unread int64
	config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)
	stats["unread_notifications"] = unread

	return stats
}

func getScoutDashboard(scoutID int) map[string]interface{} {
	stats := make(map[string]interface{})

	var assigned int64
	config.DB.Model(&models.ReviewAssignment{}).
		Where("scout_id = ?", scoutID).
		Count(&assigned)

	var submitted int64
	config.DB.Model(&models.Review{}).
		Where("scout_id = ? AND is_submitted = ?", scoutID, true).
		Count(&submitted)

	var drafts int64
	config.DB.Model(&models.Review{}).
		Where("scout_id = ? AND is_submitted = ?", scoutID, false).
		Count(&drafts)

	var pending int64
	config.DB.Table("review_assignments ra").
		Joins("JOIN submissions s ON s.submission_id = ra.submission_id AND s.deleted_at IS NULL").
		Joins("LEFT JOIN reviews r ON r.submission_id = ra.submission_id AND r.scout_id = ra.scout_id").
		Where("ra.scout_id = ? AND s.status = ? AND (r.review_id IS NULL OR r.is_submitted = ?)",
			scoutID, models.SubmissionStatusInReview, false).
		Count(&pending)

	stats["assigned"] = assigned
	stats["submitted_reviews"] = submitted
	stats["draft_reviews"] = drafts
	stats["pending"] = pending

	return stats
}

func getAdminDashboard() map[string]interface{} {
	stats := make(map[string]interface{})

	views, reviews, assignments, err := loadAnalyticsInput()
	if err != nil {
		return stats
	}

	snapshot := services.ComputeAnalytics(views, reviews, assignments, services.DateFilterAll, time.Now())
	stats["overview"] = snapshot

	pending := services.FilterAndSort(views, services.FilterCriteria{
		StatusFilter: services.StatusFilterPending,
		SortBy:       services.SortByDate,
		SortOrder:    "asc",
	})
	if len(pending) > 10 {
		pending = pending[:10]
	}
	stats["pending_submissions"] = pending

	var totalStudents int64
	config.DB.Model(&models.User{}).
		Where("role_id = ? AND delete_at IS NULL", models.RoleStudent).
		Count(&totalStudents)
	stats["total_students"] = totalStudents

	return stats
}
