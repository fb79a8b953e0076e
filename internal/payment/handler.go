package payment

import (
	"net/http"

	sharedContext "github.com/fussballmanager/go-api-server/internal/shared/context"
	"github.com/fussballmanager/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService *PaymentService
}

func NewPaymentHandler(paymentService *PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

type paymentPath struct {
	ID uint32 `uri:"id"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var request CreatePaymentRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.paymentService.CreatePayment(c.Request.Context(), &request, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *PaymentHandler) List(c *gin.Context) {
	var query ListPaymentsQuery
	if !handler.BindQuery(c, &query) {
		return
	}

	response, err := h.paymentService.ListPayments(c.Request.Context(), query.ToFilter())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) Pay(c *gin.Context) {
	caller, ok := sharedContext.RequireCaller(c)
	if !ok {
		return
	}

	var path paymentPath
	if !handler.BindURI(c, &path) {
		return
	}

	response, err := h.paymentService.MarkPaid(c.Request.Context(), path.ID, caller)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
