package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/imran-binhasan/fitstat-server/internal/api"
	"github.com/imran-binhasan/fitstat-server/internal/auth"
	"github.com/imran-binhasan/fitstat-server/internal/class"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateIntent godoc
// @Summary      Create payment intent
// @Description  Creates a payment intent at the gateway and returns its client secret.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateIntentRequest  true  "Amount and currency"
// @Success      200      {object}  api.PaymentIntentResponse
// @Failure      400      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /payments/create-payment-intent [post]
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrAmountTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be at least 50 in minor units"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, api.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	})
}

// ConfirmPayment godoc
// @Summary      Record confirmed payment
// @Description  Validates class capacity and intent status, persists the payment and increments the class booking counter.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ConfirmPaymentRequest  true  "Payment data"
// @Success      201      {object}  Payment
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Failure      500      {object}  gin.H
// @Router       /payments [post]
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.service.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, class.ErrClassNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Class not found"})
		case errors.Is(err, class.ErrCapacityExceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class capacity exceeded"})
		case errors.Is(err, class.ErrClassInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Class is not active"})
		case errors.Is(err, ErrIntentNotSucceeded):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment has not succeeded"})
		case errors.Is(err, ErrDuplicateIntent):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment already recorded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// RefundPayment godoc
// @Summary      Refund payment
// @Description  Refunds a payment through the gateway and marks the record refunded. Admin only.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  Payment
// @Failure      400  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Failure      409  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /admin/payments/{id}/refund [post]
func (h *Handler) RefundPayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment ID"})
		return
	}

	payment, err := h.service.RefundPayment(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		case errors.Is(err, ErrAlreadyRefunded):
			c.JSON(http.StatusConflict, gin.H{"error": "Payment already refunded"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refund payment"})
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListMyPayments godoc
// @Summary      List own payments
// @Description  Returns payments belonging to the authenticated user's email.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Payment
// @Failure      401  {object}  gin.H
// @Failure      500  {object}  gin.H
// @Router       /payments [get]
func (h *Handler) ListMyPayments(c *gin.Context) {
	userEmail, exists := auth.GetUserEmail(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payments, err := h.service.GetPaymentsByEmail(c.Request.Context(), userEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// ListAllPayments godoc
// @Summary      List all payments
// @Description  Returns every payment record. Admin only.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        limit   query     int  false  "Page size"
// @Param        offset  query     int  false  "Page offset"
// @Success      200  {array}   Payment
// @Failure      500  {object}  gin.H
// @Router       /admin/payments [get]
func (h *Handler) ListAllPayments(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	payments, err := h.service.GetAllPayments(c.Request.Context(), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}
