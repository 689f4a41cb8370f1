package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/config"
	"github.com/Truthtechno/LockerRoom-sub003/models"
	"github.com/Truthtechno/LockerRoom-sub003/services"
	"github.com/Truthtechno/LockerRoom-sub003/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Rating *int   `json:"rating"`
	Notes  string `json:"notes"`
}

// GetReviewQueue lists the submissions assigned to the authenticated scout,
// run through the filter/sort engine.
func GetReviewQueue(c *gin.Context) {
	scoutID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	criteria := parseFilterCriteria(c)
	if err := services.ValidateCriteria(criteria); err != nil {
		respondServiceError(c, err)
		return
	}

	var submissions []models.Submission
	if err := config.DB.Preload("User").Preload("User.StudentProfile").
		Preload("Reviews").Preload("FinalFeedback").
		Joins("JOIN review_assignments ra ON ra.submission_id = submissions.submission_id").
		Where("ra.scout_id = ? AND submissions.deleted_at IS NULL", scoutID).
		Order("submissions.created_at DESC").
		Find(&submissions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review queue"})
		return
	}

	views := services.BuildSubmissionViews(submissions, scoutID)
	views = services.FilterAndSort(views, criteria)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": views,
		"total":       len(views),
	})
}

// SaveDraftReview upserts the scout's review without submitting it. The
// rating may be left empty on a draft.
func SaveDraftReview(c *gin.Context) {
	upsertReview(c, false)
}

// SubmitReview upserts the scout's review and marks it submitted. A rating
// between 1 and 5 is required.
func SubmitReview(c *gin.Context) {
	upsertReview(c, true)
}

func upsertReview(c *gin.Context, submit bool) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	scoutID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if submit {
		if err := services.ValidateRating(req.Rating); err != nil {
			respondServiceError(c, err)
			return
		}
	} else if err := services.ValidateDraftRating(req.Rating); err != nil {
		respondServiceError(c, err)
		return
	}

	var submission models.Submission
	if err := config.DB.Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if err := services.CanEditReview(&submission); err != nil {
		respondServiceError(c, err)
		return
	}

	var assignment models.ReviewAssignment
	if err := config.DB.Where("submission_id = ? AND scout_id = ?", submissionID, scoutID).
		First(&assignment).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Submission is not assigned to you"})
		return
	}

	now := time.Now()
	notes := utils.SanitizeInput(req.Notes)

	tx := config.DB.Begin()

	var review models.Review
	err = tx.Where("submission_id = ? AND scout_id = ?", submissionID, scoutID).First(&review).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			SubmissionID: submissionID,
			ScoutID:      scoutID,
			CreatedAt:    now,
		}
	case err != nil:
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load review"})
		return
	}

	review.Rating = req.Rating
	review.Notes = ptr(notes)
	review.UpdatedAt = now
	if submit {
		review.IsSubmitted = true
		review.SubmittedAt = &now
	} else {
		// A draft save moves the review back to draft state. A previously
		// submitted rating stops counting until the scout resubmits.
		review.IsSubmitted = false
		review.SubmittedAt = nil
	}

	if err := tx.Save(&review).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	action := "save_draft"
	if submit {
		action = "submit_review"
	}
	serialized, _ := json.Marshal(map[string]interface{}{
		"rating":       req.Rating,
		"is_submitted": review.IsSubmitted,
	})
	entityID := review.ReviewID
	number := submission.SubmissionNumber
	audit := models.AuditLog{
		UserID:       scoutID,
		Action:       action,
		EntityType:   "review",
		EntityID:     &entityID,
		EntityNumber: &number,
		NewValues:    ptr(string(serialized)),
		IPAddress:    c.ClientIP(),
		CreatedAt:    now,
	}
	if err := tx.Create(&audit).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write audit log"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save review"})
		return
	}

	message := "Draft saved"
	if submit {
		message = "Review submitted"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"review":  review,
	})
}
