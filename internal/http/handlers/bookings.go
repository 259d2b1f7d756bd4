package handlers

import (
	"net/http"
	"strconv"

	"wargameshc/internal/bookingform"
	"wargameshc/internal/domain/models"
	"wargameshc/internal/http/middleware"
	"wargameshc/internal/services"

	"github.com/gin-gonic/gin"
)

func configuredRates() bookingform.Rates {
	return bookingform.Rates{
		PlayerTHB:    env.PlayerRateTHB,
		CompanionTHB: env.CompanionRateTHB,
		PlayerUSD:    env.PlayerRateUSD,
		CompanionUSD: env.CompanionRateUSD,
	}
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Rates:     configuredRates(),
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/booking
// Public endpoint behind the booking form submit button. The response data
// is the receipt the form shows on the success screen.
func CreateBooking(c *gin.Context) {
	var payload bookingform.Payload
	if !BindJSONOrError(c, &payload) {
		return
	}

	b, err := bookingService(c).SubmitInquiry(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	RespondSuccess(c, http.StatusCreated, gin.H{
		"id":        b.ID,
		"reference": b.Reference,
		"status":    b.Status,
	})
}

// GET /api/booking?status=&search=&page=&limit=
func GetBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := models.BookingFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	}

	bookings, total, err := bookingService(c).ListBookings(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// GET /api/booking/stats
func GetBookingStats(c *gin.Context) {
	stats, err := bookingService(c).Stats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, stats)
}

// GET /api/booking/:id
func GetBookingByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	b, err := bookingService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, b)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PUT /api/booking/:id/status
func UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req updateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).UpdateStatus(id, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"id": id, "status": req.Status})
}

// GET /api/booking/:id/confirmation returns the confirmation PDF (inline).
func GetBookingConfirmationPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.GenerateConfirmation(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
