package newsletter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Description  Reactivates a previously unsubscribed email instead of duplicating it.
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        request  body      SubscribeRequest  true  "Subscriber data"
// @Success      201      {object}  Subscriber
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /newsletter/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAlreadySubscribed) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already subscribed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// Unsubscribe godoc
// @Summary      Unsubscribe from the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        request  body      UnsubscribeRequest  true  "Subscriber email"
// @Success      200      {object}  Subscriber
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /newsletter/unsubscribe [post]
func (h *Handler) Unsubscribe(c *gin.Context) {
	var req UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := h.service.Unsubscribe(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrSubscriberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Email is not subscribed"})
		case errors.Is(err, ErrAlreadyUnsubscribed):
			c.JSON(http.StatusConflict, gin.H{"error": "Email is already unsubscribed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		}
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ListSubscribers godoc
// @Summary      List newsletter subscribers
// @Tags         newsletter
// @Security     BearerAuth
// @Produce      json
// @Param        active  query     bool  false  "Active subscribers only (default true)"
// @Param        limit   query     int   false  "Page size"
// @Param        offset  query     int   false  "Page offset"
// @Success      200     {array}   Subscriber
// @Failure      500     {object}  gin.H
// @Router       /admin/newsletter [get]
func (h *Handler) ListSubscribers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	activeOnly := c.DefaultQuery("active", "true") == "true"

	subs, err := h.service.ListSubscribers(c.Request.Context(), activeOnly, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscribers"})
		return
	}

	c.JSON(http.StatusOK, subs)
}
