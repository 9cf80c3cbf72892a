package handlers

import (
	"net/http"
	"time"

	"finance-tracker-backend/internal/middleware"
	"finance-tracker-backend/internal/services/reports"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *reports.Service
}

func NewReportHandler(service *reports.Service) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportQuery struct {
	DateFrom string `form:"date_from" binding:"required,datetime=2006-01-02"`
	DateTo   string `form:"date_to" binding:"required,datetime=2006-01-02"`
	Group    string `form:"group,default=day" binding:"oneof=day week"`
}

func (q *reportQuery) window() (time.Time, time.Time) {
	from, _ := time.Parse(dateLayout, q.DateFrom)
	to, _ := time.Parse(dateLayout, q.DateTo)
	return from, to
}

func (h *ReportHandler) Summary(c *gin.Context) {
	var query reportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to := query.window()

	summary, err := h.service.Summary(middleware.CompanyID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ReportHandler) ByCategory(c *gin.Context) {
	var query reportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to := query.window()

	report, err := h.service.ByCategory(middleware.CompanyID(c), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) Timeline(c *gin.Context) {
	var query reportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	from, to := query.window()

	report, err := h.service.Timeline(middleware.CompanyID(c), from, to, query.Group)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}
