package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/config"
	"github.com/Truthtechno/LockerRoom-sub003/models"
	"github.com/Truthtechno/LockerRoom-sub003/services"
	"github.com/Truthtechno/LockerRoom-sub003/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAdminReviewQueue lists every submission for the scout admin, run
// through the filter/sort engine.
func GetAdminReviewQueue(c *gin.Context) {
	criteria := parseFilterCriteria(c)
	if err := services.ValidateCriteria(criteria); err != nil {
		respondServiceError(c, err)
		return
	}

	var submissions []models.Submission
	if err := config.DB.Preload("User").Preload("User.StudentProfile").
		Preload("Reviews").Preload("Reviews.Scout").Preload("FinalFeedback").
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}

	views := services.BuildSubmissionViews(submissions, 0)
	views = services.FilterAndSort(views, criteria)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": views,
		"total":       len(views),
	})
}

type AssignScoutsRequest struct {
	ScoutIDs []int `json:"scout_ids" binding:"required"`
}

// AssignScouts assigns one or more scouts to a submission. Already-assigned
// scouts are skipped.
func AssignScouts(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	var req AssignScoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.ScoutIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scout_ids is required"})
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		return
	}

	if submission.IsTerminal() {
		c.JSON(http.StatusConflict, gin.H{"error": "Submission is no longer in review"})
		return
	}

	var scoutCount int64
	if err := config.DB.Model(&models.User{}).
		Where("user_id IN ? AND role_id = ? AND delete_at IS NULL", req.ScoutIDs, models.RoleScout).
		Count(&scoutCount).Error; err != nil || int(scoutCount) != len(req.ScoutIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more scout IDs are invalid"})
		return
	}

	now := time.Now()
	tx := config.DB.Begin()

	assigned := 0
	for _, scoutID := range req.ScoutIDs {
		var existing models.ReviewAssignment
		err := tx.Where("submission_id = ? AND scout_id = ?", submissionID, scoutID).
			First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check assignments"})
			return
		}

		assignment := models.ReviewAssignment{
			SubmissionID: submissionID,
			ScoutID:      scoutID,
			AssignedBy:   adminID,
			AssignedAt:   now,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment"})
			return
		}

		notification := models.Notification{
			UserID:              scoutID,
			Title:               "New review assignment",
			Message:             fmt.Sprintf("Submission %s is waiting for your review", submission.SubmissionNumber),
			Type:                "info",
			RelatedSubmissionID: &submission.SubmissionID,
			CreatedAt:           now,
		}
		if err := tx.Create(&notification).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
			return
		}
		assigned++
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign scouts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Scouts assigned successfully",
		"assigned": assigned,
	})
}

type FinalizeRequest struct {
	Summary string `json:"summary"`
}

// FinalizeSubmission closes review collection for a submission: computes the
// mean rating over submitted reviews, publishes the final feedback and moves
// the submission to finalized. The status change and the feedback row commit
// together or not at all.
func FinalizeSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	var req FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var submission models.Submission
	if err := tx.Preload("User").
		Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	var reviews []models.Review
	if err := tx.Where("submission_id = ?", submissionID).Find(&reviews).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	if err := services.CanFinalize(&submission, services.CountSubmitted(reviews)); err != nil {
		tx.Rollback()
		respondServiceError(c, err)
		return
	}

	now := time.Now()
	finalRating := services.FinalRating(reviews)
	summary := utils.SanitizeInput(req.Summary)

	feedback := models.FinalFeedback{
		SubmissionID: submission.SubmissionID,
		FinalRating:  finalRating,
		Summary:      ptr(summary),
		PublishedBy:  adminID,
		PublishedAt:  now,
	}
	if err := tx.Create(&feedback).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish final feedback"})
		return
	}

	if err := tx.Model(&models.Submission{}).
		Where("submission_id = ?", submission.SubmissionID).
		Updates(map[string]interface{}{
			"status":     models.SubmissionStatusFinalized,
			"updated_at": now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		return
	}

	oldStatus := submission.Status
	history := models.SubmissionStatusHistory{
		SubmissionID: submission.SubmissionID,
		OldStatus:    &oldStatus,
		NewStatus:    models.SubmissionStatusFinalized,
		ChangedBy:    adminID,
		Notes:        ptr(fmt.Sprintf("finalized with rating %.2f", finalRating)),
		CreatedAt:    now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log status history"})
		return
	}

	serialized, _ := json.Marshal(map[string]interface{}{
		"final_rating": finalRating,
		"status":       models.SubmissionStatusFinalized,
	})
	entityID := submission.SubmissionID
	number := submission.SubmissionNumber
	audit := models.AuditLog{
		UserID:       adminID,
		Action:       "finalize",
		EntityType:   "submission",
		EntityID:     &entityID,
		EntityNumber: &number,
		NewValues:    ptr(string(serialized)),
		Description:  ptr("Submission finalized"),
		IPAddress:    c.ClientIP(),
		CreatedAt:    now,
	}
	if userAgent := strings.TrimSpace(c.GetHeader("User-Agent")); userAgent != "" {
		audit.UserAgent = &userAgent
	}
	if err := tx.Create(&audit).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write audit log"})
		return
	}

	notification := models.Notification{
		UserID:              submission.UserID,
		Title:               "Your feedback is ready",
		Message:             fmt.Sprintf("Submission %s has been reviewed. Final rating: %s", submission.SubmissionNumber, utils.FormatRating(finalRating)),
		Type:                "success",
		RelatedSubmissionID: &submission.SubmissionID,
		CreatedAt:           now,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to finalize submission"})
		return
	}

	// Best effort: mail failures are logged, never surfaced to the admin.
	if submission.User != nil && submission.User.Email != "" {
		body := fmt.Sprintf("<p>Your submission %s has been reviewed.</p><p>Final rating: <strong>%s</strong></p>",
			submission.SubmissionNumber, utils.FormatRating(finalRating))
		if summary != "" {
			body += fmt.Sprintf("<p>%s</p>", summary)
		}
		if err := config.SendMail([]string{submission.User.Email}, "Your LockerRoom feedback is ready", body); err != nil {
			log.Printf("Warning: failed to send finalization mail for %s: %v", submission.SubmissionNumber, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"message":        "Submission finalized successfully",
		"final_feedback": feedback,
	})
}

// RejectSubmission moves a submission from in_review to rejected.
func RejectSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	adminID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	var req struct {
		RejectionReason string `json:"rejection_reason" binding:"required"`
		Comment         string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.RejectionReason) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rejection reason is required"})
		return
	}

	tx := config.DB.Begin()

	var submission models.Submission
	if err := tx.Preload("User").
		Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if err := services.CanReject(&submission); err != nil {
		tx.Rollback()
		respondServiceError(c, err)
		return
	}

	now := time.Now()
	reason := strings.TrimSpace(req.RejectionReason)

	if err := tx.Model(&models.Submission{}).
		Where("submission_id = ?", submission.SubmissionID).
		Updates(map[string]interface{}{
			"status":     models.SubmissionStatusRejected,
			"updated_at": now,
		}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission status"})
		return
	}

	oldStatus := submission.Status
	history := models.SubmissionStatusHistory{
		SubmissionID: submission.SubmissionID,
		OldStatus:    &oldStatus,
		NewStatus:    models.SubmissionStatusRejected,
		ChangedBy:    adminID,
		Reason:       &reason,
		Notes:        ptr(strings.TrimSpace(req.Comment)),
		CreatedAt:    now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log status history"})
		return
	}

	entityID := submission.SubmissionID
	number := submission.SubmissionNumber
	audit := models.AuditLog{
		UserID:       adminID,
		Action:       "reject",
		EntityType:   "submission",
		EntityID:     &entityID,
		EntityNumber: &number,
		Description:  &reason,
		IPAddress:    c.ClientIP(),
		CreatedAt:    now,
	}
	if err := tx.Create(&audit).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record audit log"})
		return
	}

	notification := models.Notification{
		UserID:              submission.UserID,
		Title:               "Submission not accepted",
		Message:             fmt.Sprintf("Submission %s was not accepted for review: %s", submission.SubmissionNumber, reason),
		Type:                "warning",
		RelatedSubmissionID: &submission.SubmissionID,
		CreatedAt:           now,
	}
	if err := tx.Create(&notification).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create notification"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject submission"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Submission rejected successfully",
	})
}
