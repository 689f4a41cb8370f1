package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Truthtechno/LockerRoom-sub003/config"
	"github.com/Truthtechno/LockerRoom-sub003/models"
	"github.com/Truthtechno/LockerRoom-sub003/services"
	"github.com/Truthtechno/LockerRoom-sub003/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateSubmissionRequest struct {
	MediaURL   string  `json:"media_url" binding:"required"`
	Notes      string  `json:"notes"`
	PromoCode  string  `json:"promo_code"`
	PaidAmount float64 `json:"paid_amount"`
}

// CreateSubmission creates a new submission for the authenticated student.
func CreateSubmission(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User context missing"})
		return
	}

	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !utils.ValidateMediaURL(req.MediaURL) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media_url must be an http(s) URL"})
		return
	}
	if req.PaidAmount < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paid_amount cannot be negative"})
		return
	}

	now := time.Now()
	submission := models.Submission{
		SubmissionNumber: "LR-" + strings.ToUpper(uuid.NewString()[:8]),
		UserID:           userID,
		MediaURL:         strings.TrimSpace(req.MediaURL),
		Notes:            ptr(utils.SanitizeInput(req.Notes)),
		PromoCode:        ptr(strings.TrimSpace(req.PromoCode)),
		PaidAmount:       req.PaidAmount,
		Status:           models.SubmissionStatusInReview,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	tx := config.DB.Begin()

	if err := tx.Create(&submission).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	serialized, _ := json.Marshal(map[string]interface{}{
		"media_url":   submission.MediaURL,
		"paid_amount": submission.PaidAmount,
	})
	entityID := submission.SubmissionID
	number := submission.SubmissionNumber
	audit := models.AuditLog{
		UserID:       userID,
		Action:       "create",
		EntityType:   "submission",
		EntityID:     &entityID,
		EntityNumber: &number,
		NewValues:    ptr(string(serialized)),
		Description:  ptr("Submission created"),
		IPAddress:    c.ClientIP(),
		CreatedAt:    now,
	}
	if err := tx.Create(&audit).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write audit log"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create submission"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Submission created successfully",
		"submission": submission,
	})
}

// GetMySubmissions lists the authenticated student's submissions with review
// progress, filtered and sorted by the shared criteria parameters.
func GetMySubmissions(c *gin.Context) {
	userID, ok := currentUserID(c)
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
		Where("user_id = ? AND deleted_at IS NULL", userID).
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

// GetSubmission returns one submission. Students only see their own, and
// individual reviews stay hidden from them; scouts and admins get the full
// review set.
func GetSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil || submissionID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid submission ID"})
		return
	}

	userID, _ := currentUserID(c)
	roleID, _ := currentRoleID(c)

	var submission models.Submission
	if err := config.DB.Preload("User").Preload("User.StudentProfile").
		Preload("Reviews").Preload("Reviews.Scout").Preload("FinalFeedback").
		Where("submission_id = ? AND deleted_at IS NULL", submissionID).
		First(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load submission"})
		return
	}

	if roleID == models.RoleStudent {
		if submission.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		submission.Reviews = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}
