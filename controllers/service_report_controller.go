package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Miraku17/PowerSystems-sub006/config"
	"github.com/Miraku17/PowerSystems-sub006/models"
	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/storage"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// reportModel maps a report form type onto a fresh model instance for reads.
// Only the signatory-bearing report forms are served here; job orders,
// time sheets and leave requests have their own controllers.
func reportModel(formType string) (interface{}, service.FormType, bool) {
	ft, ok := service.LookupFormType(formType)
	if !ok || ft.Module != "service_reports" {
		return nil, service.FormType{}, false
	}
	switch formType {
	case "engine-service-report":
		return &models.EngineServiceReport{}, ft, true
	case "pump-service-report":
		return &models.PumpServiceReport{}, ft, true
	case "engine-commissioning-report":
		return &models.EngineCommissioningReport{}, ft, true
	case "pump-teardown-report":
		return &models.PumpTeardownReport{}, ft, true
	}
	return nil, service.FormType{}, false
}

// reportForm is a bound report payload. Requests bind into these inputs, not
// into the models, so lifecycle, approval and signatory-flag columns are out
// of reach of the request body: designating a signatory is allowed here,
// flipping their flag is not (that goes through the signatory toggle).
type reportForm interface {
	model(createdBy uint) interface{}
	updates() map[string]interface{}
}

func reportInput(formType string) (reportForm, service.FormType, bool) {
	ft, ok := service.LookupFormType(formType)
	if !ok || ft.Module != "service_reports" {
		return nil, service.FormType{}, false
	}
	switch formType {
	case "engine-service-report":
		return &EngineServiceReportInput{}, ft, true
	case "pump-service-report":
		return &PumpServiceReportInput{}, ft, true
	case "engine-commissioning-report":
		return &EngineCommissioningReportInput{}, ft, true
	case "pump-teardown-report":
		return &PumpTeardownReportInput{}, ft, true
	}
	return nil, service.FormType{}, false
}

type EngineServiceReportInput struct {
	JobOrderID       *uint     `json:"job_order_id"`
	EngineID         uint      `json:"engine_id" binding:"required"`
	ServiceDate      time.Time `json:"service_date" binding:"required"`
	RunningHours     float64   `json:"running_hours"`
	Findings         string    `json:"findings"`
	WorkPerformed    string    `json:"work_performed"`
	Recommendations  string    `json:"recommendations"`
	NotedByUserID    *uint     `json:"noted_by_user_id"`
	ApprovedByUserID *uint     `json:"approved_by_user_id"`
}

func (in *EngineServiceReportInput) model(createdBy uint) interface{} {
	r := &models.EngineServiceReport{
		JobOrderID:      in.JobOrderID,
		EngineID:        in.EngineID,
		ServiceDate:     in.ServiceDate,
		RunningHours:    in.RunningHours,
		Findings:        in.Findings,
		WorkPerformed:   in.WorkPerformed,
		Recommendations: in.Recommendations,
	}
	r.NotedByUserID = in.NotedByUserID
	r.ApprovedByUserID = in.ApprovedByUserID
	r.SetCreatedBy(createdBy)
	return r
}

func (in *EngineServiceReportInput) updates() map[string]interface{} {
	return map[string]interface{}{
		"job_order_id":        in.JobOrderID,
		"engine_id":           in.EngineID,
		"service_date":        in.ServiceDate,
		"running_hours":       in.RunningHours,
		"findings":            in.Findings,
		"work_performed":      in.WorkPerformed,
		"recommendations":     in.Recommendations,
		"noted_by_user_id":    in.NotedByUserID,
		"approved_by_user_id": in.ApprovedByUserID,
	}
}

type PumpServiceReportInput struct {
	JobOrderID       *uint     `json:"job_order_id"`
	PumpID           uint      `json:"pump_id" binding:"required"`
	ServiceDate      time.Time `json:"service_date" binding:"required"`
	SuctionPressure  float64   `json:"suction_pressure"`
	DischargeHead    float64   `json:"discharge_head"`
	Findings         string    `json:"findings"`
	WorkPerformed    string    `json:"work_performed"`
	NotedByUserID    *uint     `json:"noted_by_user_id"`
	ApprovedByUserID *uint     `json:"approved_by_user_id"`
}

func (in *PumpServiceReportInput) model(createdBy uint) interface{} {
	r := &models.PumpServiceReport{
		JobOrderID:      in.JobOrderID,
		PumpID:          in.PumpID,
		ServiceDate:     in.ServiceDate,
		SuctionPressure: in.SuctionPressure,
		DischargeHead:   in.DischargeHead,
		Findings:        in.Findings,
		WorkPerformed:   in.WorkPerformed,
	}
	r.NotedByUserID = in.NotedByUserID
	r.ApprovedByUserID = in.ApprovedByUserID
	r.SetCreatedBy(createdBy)
	return r
}

func (in *PumpServiceReportInput) updates() map[string]interface{} {
	return map[string]interface{}{
		"job_order_id":        in.JobOrderID,
		"pump_id":             in.PumpID,
		"service_date":        in.ServiceDate,
		"suction_pressure":    in.SuctionPressure,
		"discharge_head":      in.DischargeHead,
		"findings":            in.Findings,
		"work_performed":      in.WorkPerformed,
		"noted_by_user_id":    in.NotedByUserID,
		"approved_by_user_id": in.ApprovedByUserID,
	}
}

type EngineCommissioningReportInput struct {
	JobOrderID        *uint     `json:"job_order_id"`
	EngineID          uint      `json:"engine_id" binding:"required"`
	CommissioningDate time.Time `json:"commissioning_date" binding:"required"`
	LoadTestResult    string    `json:"load_test_result"`
	AlarmsTested      string    `json:"alarms_tested"`
	Remarks           string    `json:"remarks"`
	NotedByUserID     *uint     `json:"noted_by_user_id"`
	ApprovedByUserID  *uint     `json:"approved_by_user_id"`
}

func (in *EngineCommissioningReportInput) model(createdBy uint) interface{} {
	r := &models.EngineCommissioningReport{
		JobOrderID:        in.JobOrderID,
		EngineID:          in.EngineID,
		CommissioningDate: in.CommissioningDate,
		LoadTestResult:    in.LoadTestResult,
		AlarmsTested:      in.AlarmsTested,
		Remarks:           in.Remarks,
	}
	r.NotedByUserID = in.NotedByUserID
	r.ApprovedByUserID = in.ApprovedByUserID
	r.SetCreatedBy(createdBy)
	return r
}

func (in *EngineCommissioningReportInput) updates() map[string]interface{} {
	return map[string]interface{}{
		"job_order_id":        in.JobOrderID,
		"engine_id":           in.EngineID,
		"commissioning_date":  in.CommissioningDate,
		"load_test_result":    in.LoadTestResult,
		"alarms_tested":       in.AlarmsTested,
		"remarks":             in.Remarks,
		"noted_by_user_id":    in.NotedByUserID,
		"approved_by_user_id": in.ApprovedByUserID,
	}
}

type PumpTeardownReportInput struct {
	JobOrderID       *uint     `json:"job_order_id"`
	PumpID           uint      `json:"pump_id" binding:"required"`
	TeardownDate     time.Time `json:"teardown_date" binding:"required"`
	PartsCondition   string    `json:"parts_condition"`
	PartsToReplace   string    `json:"parts_to_replace"`
	Remarks          string    `json:"remarks"`
	NotedByUserID    *uint     `json:"noted_by_user_id"`
	ApprovedByUserID *uint     `json:"approved_by_user_id"`
}

func (in *PumpTeardownReportInput) model(createdBy uint) interface{} {
	r := &models.PumpTeardownReport{
		JobOrderID:     in.JobOrderID,
		PumpID:         in.PumpID,
		TeardownDate:   in.TeardownDate,
		PartsCondition: in.PartsCondition,
		PartsToReplace: in.PartsToReplace,
		Remarks:        in.Remarks,
	}
	r.NotedByUserID = in.NotedByUserID
	r.ApprovedByUserID = in.ApprovedByUserID
	r.SetCreatedBy(createdBy)
	return r
}

func (in *PumpTeardownReportInput) updates() map[string]interface{} {
	return map[string]interface{}{
		"job_order_id":        in.JobOrderID,
		"pump_id":             in.PumpID,
		"teardown_date":       in.TeardownDate,
		"parts_condition":     in.PartsCondition,
		"parts_to_replace":    in.PartsToReplace,
		"remarks":             in.Remarks,
		"noted_by_user_id":    in.NotedByUserID,
		"approved_by_user_id": in.ApprovedByUserID,
	}
}

func CreateServiceReport(c *gin.Context) {
	in, _, ok := reportInput(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	report := in.model(uid)
	if err := config.DB.Create(report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Report created", "data": report})
}

func GetServiceReports(c *gin.Context) {
	_, ft, ok := reportModel(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Table(ft.Table).
		Where("deleted_at IS NULL").
		Order("id DESC")

	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, ft.Module, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var rows []map[string]interface{}
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rows})
}

func GetServiceReportByID(c *gin.Context) {
	model, ft, ok := reportModel(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	uid, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	q := config.DB.Table(ft.Table).Where("deleted_at IS NULL")
	perms := service.NewPermissions(config.DB)
	q, err = perms.VisibilityFilter(q, ft.Module, uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if err := q.First(model, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": model})
}

func UpdateServiceReport(c *gin.Context) {
	in, ft, ok := reportInput(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := fetchActiveRow(ft.Table, id); err != nil {
		respondServiceError(c, err)
		return
	}

	if err := c.ShouldBindJSON(in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid payload", "error": err.Error()})
		return
	}

	updates := in.updates()
	updates["updated_at"] = time.Now().UTC()
	if err := config.DB.Table(ft.Table).Where("id = ?", id).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report updated"})
}

// UploadReportSignature stores the technician signature image for a report.
// The signature is a mandatory asset: an upload failure fails the request
// (unlike job-order attachments, which are best-effort).
func UploadReportSignature(c *gin.Context) {
	_, ft, ok := reportModel(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown report type"})
		return
	}

	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := fetchActiveRow(ft.Table, id); err != nil {
		respondServiceError(c, err)
		return
	}

	fh, err := c.FormFile("signature")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read signature"})
		return
	}
	defer f.Close()

	key := fmt.Sprintf("signatures/%s/%d/%s%s", ft.Table, id, uuid.NewString(), filepath.Ext(fh.Filename))
	url, err := storage.Upload(key, f, fh.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Signature upload failed"})
		return
	}

	err = config.DB.Table(ft.Table).Where("id = ?", id).Updates(map[string]interface{}{
		"signature_url": url,
		"updated_at":    time.Now().UTC(),
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.Success(c, "Signature uploaded", gin.H{"signature_url": url})
}

func fetchActiveRow(table string, id uint) (map[string]interface{}, error) {
	row := map[string]interface{}{}
	res := config.DB.Table(table).Where("id = ? AND deleted_at IS NULL", id).Take(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, res.Error
	}
	return row, nil
}
