package controllers

import (
	"fmt"
	"time"

	"vocabgame/backend/config"
	"vocabgame/backend/middleware"
	"vocabgame/backend/models"
	"vocabgame/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB  *gorm.DB
	Cfg *config.Config

	// Pending holds the transient payment copies consulted during
	// verification; entries lapse after Cfg.PaymentRetention even
	// though the ledger row persists.
	Pending *cache.Cache
}

func NewPaymentController(db *gorm.DB, cfg *config.Config) *PaymentController {
	return &PaymentController{
		DB:      db,
		Cfg:     cfg,
		Pending: cache.New(cfg.PaymentRetention, 10*time.Minute),
	}
}

// CreatePayment godoc
// @Summary Create a payment request
// @Description Opens a pending bank-transfer record and returns the
// transfer instructions
// @Tags payments
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Payment data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /api/payment/create [post]
func (pc *PaymentController) CreatePayment(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	var input struct {
		Amount float64 `json:"amount"`
		Method string  `json:"method"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Amount <= 0 {
		return utils.BadRequest(c, "Amount must be positive")
	}

	paymentID, err := utils.GeneratePaymentID()
	if err != nil {
		return utils.InternalServerError(c, "Could not generate payment id")
	}

	payment := models.Payment{
		PaymentID: paymentID,
		UserID:    userID,
		Amount:    input.Amount,
		Method:    input.Method,
		Status:    models.PaymentStatusPending,
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return utils.InternalServerError(c, "Could not create payment")
	}

	pc.Pending.Set(paymentID, models.PendingPayment{
		UserID:    userID,
		Amount:    input.Amount,
		Method:    input.Method,
		Status:    models.PaymentStatusPending,
		CreatedAt: time.Now(),
	}, cache.DefaultExpiration)

	return utils.JSONSuccess(c, fiber.Map{
		"paymentId": paymentID,
		"message":   "Please transfer using the details below:",
		"paymentInfo": models.PaymentInfo{
			Bank:          pc.Cfg.BankName,
			AccountNumber: pc.Cfg.BankAccountNumber,
			AccountName:   pc.Cfg.BankAccountName,
			Amount:        input.Amount,
			Content:       fmt.Sprintf("VOCAB %s", paymentID),
		},
	})
}

// VerifyPayment godoc
// @Summary Verify a payment
// @Description Marks the payment verified and upgrades the owning
// account to pro. Verification is manual: an operator confirms the
// transfer out of band and calls this endpoint with the payment id.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body map[string]interface{} true "Verification data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/payment/verify [post]
func (pc *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	var input struct {
		PaymentID       string `json:"paymentId"`
		TransactionCode string `json:"transactionCode"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.PaymentID == "" {
		return utils.BadRequest(c, "Missing payment id")
	}

	// Verification only succeeds while the transient copy is alive;
	// after the retention window the ledger row alone is not enough.
	entry, found := pc.Pending.Get(input.PaymentID)
	if !found {
		return utils.NotFound(c, "Payment not found")
	}
	pending := entry.(models.PendingPayment)

	code := input.TransactionCode
	if code == "" {
		code = "manual"
	}

	now := time.Now()
	err := pc.DB.Model(&models.Payment{}).
		Where("payment_id = ?", input.PaymentID).
		Updates(map[string]interface{}{
			"status":           models.PaymentStatusVerified,
			"transaction_code": code,
			"verified_at":      &now,
		}).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not update payment")
	}

	err = pc.DB.Model(&models.User{}).
		Where("id = ?", pending.UserID).
		Update("is_pro", true).Error
	if err != nil {
		return utils.InternalServerError(c, "Could not upgrade user")
	}

	pending.Status = models.PaymentStatusVerified
	pc.Pending.Set(input.PaymentID, pending, cache.DefaultExpiration)

	return utils.JSONSuccess(c, fiber.Map{
		"message": "Payment verified! Account has been upgraded to pro.",
	})
}
