package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Miraku17/PowerSystems-sub006/service"
	"github.com/Miraku17/PowerSystems-sub006/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service sentinel errors onto the HTTP taxonomy:
// validation 400, authorization 403, missing 404, everything else 500 with
// a generic message (the real error is logged server-side only).
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.Error(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, service.ErrAlreadyDeleted),
		errors.Is(err, service.ErrNotDeleted),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrUnknownFormType),
		errors.Is(err, service.ErrNotApprovable),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInvalidField),
		errors.Is(err, service.ErrTableNotAllowed):
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, service.ErrPermissionDenied),
		errors.Is(err, service.ErrDifferentBranch),
		errors.Is(err, service.ErrNotSignatory),
		errors.Is(err, service.ErrWrongLevel):
		utils.Error(c, http.StatusForbidden, err.Error(), nil)
	default:
		log.Printf("internal error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Something went wrong", nil)
	}
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}
