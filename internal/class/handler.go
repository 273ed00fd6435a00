package class

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imran-binhasan/fitstat-server/internal/metrics"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateClass godoc
// @Summary      Create class
// @Description  Creates a new class. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateClassRequest  true  "Class data"
// @Success      201      {object}  Class
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListClasses godoc
// @Summary      List classes
// @Description  Returns classes filtered and sorted by query params.
// @Tags         classes
// @Produce      json
// @Param        category      query     string  false  "Category filter"
// @Param        difficulty    query     string  false  "Difficulty filter (beginner|intermediate|advanced)"
// @Param        trainer       query     string  false  "Trainer email filter"
// @Param        search        query     string  false  "Name search"
// @Param        sort          query     string  false  "Sort (price_asc|price_desc|newest)"
// @Param        limit         query     int     false  "Page size"
// @Param        offset        query     int     false  "Page offset"
// @Success      200  {array}   ClassWithAvailability
// @Failure      500  {object}  gin.H
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ListFilter{
		Category:     c.Query("category"),
		Difficulty:   c.Query("difficulty"),
		TrainerEmail: c.Query("trainer"),
		Search:       c.Query("search"),
		ActiveOnly:   c.DefaultQuery("include_inactive", "false") != "true",
		SortBy:       c.Query("sort"),
		Limit:        limit,
		Offset:       offset,
	}

	classes, err := h.service.ListClasses(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classes"})
		return
	}

	c.JSON(http.StatusOK, classes)
}

// GetClass godoc
// @Summary      Get class
// @Tags         classes
// @Produce      json
// @Param        id   path      int  true  "Class ID"
// @Success      200  {object}  Class
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /classes/{id} [get]
func (h *Handler) GetClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	class, err := h.service.GetClass(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, class)
}

// UpdateClass godoc
// @Summary      Update class
// @Description  Updates class fields. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Class ID"
// @Param        request  body      UpdateClassRequest  true  "Class data"
// @Success      200      {object}  Class
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /admin/classes/{id} [put]
func (h *Handler) UpdateClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	var req UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, err := h.service.UpdateClass(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, ErrCapacityBelowBooked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Max capacity cannot be below the booked count"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		}
		return
	}

	c.JSON(http.StatusOK, class)
}

// DeleteClass godoc
// @Summary      Delete class
// @Description  Soft-deletes a class by marking it inactive. Admin only.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Class ID"
// @Success      200  {object}  gin.H
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /admin/classes/{id} [delete]
func (h *Handler) DeleteClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrClassNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete class"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Class deactivated"})
}

// BookClass godoc
// @Summary      Increment booking counter
// @Description  Increments the class booking counter after a confirmed booking.
// @Tags         classes
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Class ID"
// @Success      200  {object}  Class
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /classes/{id}/book [patch]
func (h *Handler) BookClass(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid class ID"})
		return
	}

	class, err := h.service.BookClass(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, ErrCapacityExceeded):
			metrics.RecordBooking("rejected")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class capacity exceeded"})
		case errors.Is(err, ErrClassInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class is not active"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book class"})
		}
		return
	}

	metrics.RecordBooking("confirmed")
	c.JSON(http.StatusOK, class)
}
