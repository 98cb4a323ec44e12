package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratemybandeco/backend/models"
	"github.com/ratemybandeco/backend/utils"
	"gorm.io/gorm"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// CreateReport flags a review for moderation. Any authenticated user can
// report; the report starts under review.
func (rc *ReportController) CreateReport(c *gin.Context) {
	reviewID, err := strconv.Atoi(c.Param("review_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid review id"))
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, reviewID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("review not found"))
		return
	}

	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidReason(input.Reason) {
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("unknown report reason"))
		return
	}

	report := models.Report{
		ReviewID: review.ID,
		UserID:   c.GetUint("user_id"),
		Reason:   input.Reason,
		Status:   models.ReportUnderReview,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Review %d reported by user %d (%s)", review.ID, report.UserID, report.Reason)

	utils.RespondJSON(c, http.StatusCreated, "Report submitted", report)
}

// ListPendingReports returns the moderation queue: reports still under
// review, with the offending review preloaded. Admin only.
func (rc *ReportController) ListPendingReports(c *gin.Context) {
	var reports []models.Report
	if err := rc.DB.Where("status = ?", models.ReportUnderReview).
		Preload("Review").
		Order("created_at").
		Find(&reports).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pending reports", reports)
}

// ModerateReport resolves a pending report. "remove" upholds the report
// and deletes the review together with every report against it; "dismiss"
// leaves the review intact. Terminal reports cannot be moderated again.
func (rc *ReportController) ModerateReport(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("report_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid report id"))
		return
	}

	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, reportID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("report not found"))
		return
	}

	if report.Status != models.ReportUnderReview {
		utils.RespondError(c, http.StatusConflict, errors.New("report already resolved"))
		return
	}

	switch input.Action {
	case "remove":
		// Upheld status is written before the cascade so audit history
		// survives if the delete of dependent reports is ever relaxed.
		err = rc.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&report).Update("status", models.ReportUpheld).Error; err != nil {
				return err
			}
			if err := tx.Where("review_id = ?", report.ReviewID).Delete(&models.Report{}).Error; err != nil {
				return err
			}
			return tx.Delete(&models.Review{}, report.ReviewID).Error
		})
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Report %d upheld, review %d removed", report.ID, report.ReviewID)
		utils.RespondJSON(c, http.StatusOK, "Review removed", nil)

	case "dismiss":
		if err := rc.DB.Model(&report).Update("status", models.ReportDismissed).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Report %d dismissed", report.ID)
		utils.RespondJSON(c, http.StatusOK, "Report dismissed", nil)

	default:
		utils.RespondError(c, http.StatusUnprocessableEntity, errors.New("action must be remove or dismiss"))
	}
}
