package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"perpusku_backend/internals/features/fines/fines/model"
	"perpusku_backend/internals/features/fines/fines/service"
	patronModel "perpusku_backend/internals/features/patrons/patron/model"
	helpers "perpusku_backend/internals/helpers"
)

// POST /api/u/fines/:id/pay — buat Snap token Midtrans untuk satu denda
func (fc *FineController) PayFine(c *fiber.Ctx) error {
	fineID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "fine_id tidak valid")
	}

	fine, err := service.GetFine(fc.DB, fineID)
	if err != nil {
		if errors.Is(err, service.ErrFineNotFound) {
			return helpers.Error(c, fiber.StatusNotFound, "Denda tidak ditemukan")
		}
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	// hanya pemilik denda (atau librarian) yang boleh membayarkan
	if err := helpers.EnsureOwnerOrLibrarian(c, fine.PatronID); err != nil {
		return err
	}

	var patron patronModel.PatronModel
	if err := fc.DB.First(&patron, "patron_id = ?", fine.PatronID).Error; err != nil {
		return helpers.Error(c, fiber.StatusServiceUnavailable, "DB error")
	}

	orderID := service.BuildFineOrderID(fine.FineID)
	token, err := service.GenerateSnapToken(orderID, *fine, patron.FullName(), patron.PatronEmail)
	if err != nil {
		log.Println("[ERROR] snap token:", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "Gagal membuat token pembayaran")
	}

	return helpers.Success(c, "Silakan lanjutkan pembayaran", fiber.Map{
		"order_id":   orderID,
		"snap_token": token,
		"amount":     fine.Amount,
	})
}

// POST /api/fines/notification — webhook Midtrans (tanpa auth, diverifikasi signature)
func (fc *FineController) HandleMidtransNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	signatureKey, _ := body["signature_key"].(string)
	transactionStatus, _ := body["transaction_status"].(string)

	if !service.VerifyMidtransSignature(orderID, statusCode, grossAmount, signatureKey) {
		log.Println("⚠️ [WARNING] Webhook Midtrans dengan signature tidak valid:", orderID)
		return c.SendStatus(fiber.StatusForbidden)
	}

	fineID, err := service.ParseFineOrderID(orderID)
	if err != nil {
		log.Println("[ERROR] webhook order id:", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	// simpan event apa adanya sebagai jejak audit
	event := model.PaymentEventModel{
		EventOrderID: orderID,
		EventFineID:  fineID,
		EventStatus:  transactionStatus,
		EventPayload: datatypes.JSON(c.Body()),
	}
	if err := fc.DB.Create(&event).Error; err != nil {
		log.Println("[ERROR] simpan payment event:", err)
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	switch transactionStatus {
	case "settlement", "capture":
		if err := service.DeleteFine(fc.DB, fineID); err != nil && !errors.Is(err, service.ErrFineNotFound) {
			log.Println("[ERROR] hapus denda setelah settlement:", err)
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		log.Printf("✅ [INFO] Denda %s lunas via Midtrans (%s)", fineID, orderID)
	default:
		log.Printf("[INFO] Webhook Midtrans %s status %s, belum final", orderID, transactionStatus)
	}

	return c.SendStatus(fiber.StatusOK)
}
