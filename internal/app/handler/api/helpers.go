package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"port_tracker/internal/app/repository"
	"port_tracker/internal/app/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError - нарушение бизнес-правила отдаём как 400 с его сообщением,
// всё остальное считаем инфраструктурной ошибкой
func respondError(c *gin.Context, err error) {
	var violation *service.RuleViolation
	if errors.As(err, &violation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": violation.Message,
		})
		return
	}

	logrus.Error(err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": err.Error(),
	})
}

func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid " + name,
		})
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func floatQuery(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

func timeQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Допускаем и дату без времени
		value, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil
		}
	}
	return &value
}

func pageFromQuery(c *gin.Context) repository.Page {
	page := repository.Page{
		Number: repository.DefaultPageNumber,
		Size:   repository.DefaultPageSize,
	}
	if n := intQuery(c, "pageNumber"); n != nil {
		page.Number = *n
	}
	if s := intQuery(c, "pageSize"); s != nil {
		page.Size = *s
	}
	return page
}
