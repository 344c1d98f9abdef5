package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Dramaboy123/dramabot9531/services/booking"
	"github.com/Dramaboy123/dramabot9531/utils"
)

// BookingHandler serves the front-desk endpoints.
type BookingHandler struct {
	Bookings booking.Service
	Logger   *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: svc, Logger: logger}
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var srcErr *utils.SourceError
	if errors.As(err, &srcErr) {
		h.Logger.Error("booking store write failed",
			zap.String("query", srcErr.Query), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, storeUnavailableMessage, "")
		return
	}
	utils.JSONError(c, http.StatusBadRequest, "Request failed", err.Error())
}

// createBookingRequest is the wire shape for new bookings; dates travel as
// YYYY-MM-DD strings the way the register stores them.
type createBookingRequest struct {
	GuestName       string  `json:"guest_name" binding:"required"`
	GuestPhone      string  `json:"guest_phone"`
	GuestIDNumber   string  `json:"guest_id_number"`
	Category        string  `json:"category"`
	RoomNumber      string  `json:"room_number" binding:"required"`
	CheckInDate     string  `json:"check_in_date" binding:"required"`
	CheckOutDate    string  `json:"check_out_date" binding:"required"`
	NumberOfGuests  int     `json:"number_of_guests"`
	Rate            float64 `json:"rate"`
	Advance         float64 `json:"advance"`
	Source          string  `json:"source"`
	SpecialRequests string  `json:"special_requests"`
}

// CreateBookingHandler records a new booking.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-in date", err.Error())
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid check-out date", err.Error())
		return
	}

	created, err := h.Bookings.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestIDNumber:   req.GuestIDNumber,
		Category:        req.Category,
		RoomNumber:      req.RoomNumber,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  req.NumberOfGuests,
		Rate:            req.Rate,
		Advance:         req.Advance,
		Source:          req.Source,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// CheckInHandler marks a booking as checked in.
func (h *BookingHandler) CheckInHandler(c *gin.Context) {
	if err := h.Bookings.CheckInGuest(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "checked in"})
}

// CheckOutHandler marks a booking as checked out.
func (h *BookingHandler) CheckOutHandler(c *gin.Context) {
	if err := h.Bookings.CheckOutGuest(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "checked out"})
}

// AvailableRoomsHandler lists rooms free on today or the ?date= query.
func (h *BookingHandler) AvailableRoomsHandler(c *gin.Context) {
	date := utils.Today()
	if raw := c.Query("date"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		date = parsed
	}

	rooms, err := h.Bookings.AvailableRooms(c.Request.Context(), date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date.Format(utils.DateLayout), "rooms": rooms})
}

type recordExpenseRequest struct {
	Date          string  `json:"date"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaidTo        string  `json:"paid_to"`
	PaymentMethod string  `json:"payment_method"`
	ReceiptNumber string  `json:"receipt_number"`
	Notes         string  `json:"notes"`
}

// RecordExpenseHandler records a new expense.
func (h *BookingHandler) RecordExpenseHandler(c *gin.Context) {
	var req recordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		date = parsed
	}

	created, err := h.Bookings.RecordExpense(c.Request.Context(), booking.RecordExpenseInput{
		Date:          date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		PaidTo:        req.PaidTo,
		PaymentMethod: req.PaymentMethod,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type recordFeedbackRequest struct {
	BookingID string `json:"booking_id"`
	GuestName string `json:"guest_name"`
	Rating    int    `json:"rating" binding:"required"`
	Review    string `json:"review"`
	Source    string `json:"source"`
	Date      string `json:"date"`
	Public    bool   `json:"public"`
}

// RecordFeedbackHandler records a new guest review.
func (h *BookingHandler) RecordFeedbackHandler(c *gin.Context) {
	var req recordFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := utils.ParseDate(req.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
			return
		}
		date = parsed
	}

	created, err := h.Bookings.RecordFeedback(c.Request.Context(), booking.RecordFeedbackInput{
		BookingID: req.BookingID,
		GuestName: req.GuestName,
		Rating:    req.Rating,
		Review:    req.Review,
		Source:    req.Source,
		Date:      date,
		Public:    req.Public,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
