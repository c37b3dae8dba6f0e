package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/storage"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type JobOrderInput struct {
	CustomerID  uint      `json:"customer_id" binding:"required"`
	EngineID    *uint     `json:"engine_id"`
	PumpID      *uint     `json:"pump_id"`
	Description string    `json:"description" binding:"required"`
	SiteAddress string    `json:"site_address"`
	TargetDate  time.Time `json:"target_date"`
}

func CreateJobOrder(c *gin.Context) {
	var in JobOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var cnt int64
	if err := config.DB.Model(&models.Customer{}).Where("id = ?", in.CustomerID).Count(&cnt).Error; err != nil || cnt == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer not found"})
		return
	}

	// number + insert in one transaction; retry on jo_number collision
	// from the less safe fallback strategies
	const maxRetries = 3
	var order models.JobOrderRequest
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
			seq, err := service.NextJobOrderSeq(tx)
			if err != nil {
				return err
			}

			order = models.JobOrderRequest{
				JoNumber:    utils.FormatJobOrderNumber(seq),
				JoNumberSeq: seq,
				CustomerID:  in.CustomerID,
				EngineID:    in.EngineID,
				PumpID:      in.PumpID,
				Description: in.Description,
				SiteAddress: in.SiteAddress,
				TargetDate:  in.TargetDate,
				Status:      "Pending",
			}
			order.ApprovalStatus = models.ApprovalPendingLevel1
			order.CreatedBy = uid

			if err := tx.Create(&order).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return fmt.Errorf("unique_violation: %w", err)
				}
				return err
			}
			return nil
		})

		if lastErr == nil {
			config.DB.Preload("Customer").First(&order, order.ID)
			c.JSON(http.StatusCreated, gin.H{"message": "Job order created", "data": order})
			return
		}
		if strings.Contains(lastErr.Error(), "unique_violation") {
			continue
		}
		break
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Failed to create job order",
		"error":   lastErr.Error(),
	})
}

func GetJobOrders(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Model(&models.JobOrderRequest{}).
		Where("deleted_at IS NULL").
		Preload("Customer").
		Order("jo_number_seq DESC")

	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, "job_orders", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var orders []models.JobOrderRequest
	if err := q.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// raw statuses come back mixed-case; normalize for display
	for i := range orders {
		orders[i].Status = service.NormalizeStatus(orders[i].Status)
	}
	c.JSON(http.StatusOK, gin.H{"data": orders})
}

func GetJobOrderByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	// same visibility rules as the list: records outside the caller's scope
	// read as absent
	q := config.DB.Where("deleted_at IS NULL").Preload("Customer")
	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, "job_orders", uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var order models.JobOrderRequest
	if err := q.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		return
	}

	order.Status = service.NormalizeStatus(order.Status)
	c.JSON(http.StatusOK, gin.H{"data": order})
}

func UpdateJobOrder(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var order models.JobOrderRequest
	if err := config.DB.Where("deleted_at IS NULL").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		return
	}

	var in JobOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"customer_id":  in.CustomerID,
		"engine_id":    in.EngineID,
		"pump_id":      in.PumpID,
		"description":  in.Description,
		"site_address": in.SiteAddress,
		"target_date":  in.TargetDate,
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	config.DB.Preload("Customer").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Job order updated", "data": order})
}

// UploadJobOrderAttachments stores multipart files one by one: each upload
// and its bookkeeping row is an independent remote call, so a failure
// mid-way leaves the earlier files committed. Callers retry the rest.
func UploadJobOrderAttachments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var order models.JobOrderRequest
	if err := config.DB.Where("deleted_at IS NULL").First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart form expected"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files in request"})
		return
	}

	var saved []models.Attachment
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Failed to read %s", fh.Filename), "saved": saved,
			})
			return
		}

		key := fmt.Sprintf("job-orders/%d/%s%s", order.ID, uuid.NewString(), filepath.Ext(fh.Filename))
		url, err := storage.Upload(key, f, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Upload failed at %s", fh.Filename), "saved": saved,
			})
			return
		}

		att := models.Attachment{
			OwnerTable: "job_order_requests",
			OwnerID:    order.ID,
			FileName:   fh.Filename,
			ObjectKey:  key,
			PublicURL:  url,
			SizeBytes:  fh.Size,
			UploadedBy: uid,
		}
		if err := config.DB.Create(&att).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Bookkeeping failed at %s", fh.Filename), "saved": saved,
			})
			return
		}
		saved = append(saved, att)
	}

	utils.Success(c, "Attachments uploaded", saved)
}

func GetJobOrderAttachments(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var atts []models.Attachment
	err := config.DB.
		Where("owner_table = ? AND owner_id = ?", "job_order_requests", id).
		Order("id").Find(&atts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": atts})
}
