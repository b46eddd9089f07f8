package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"perpusku_backend/internals/configs"
	"perpusku_backend/internals/features/fines/fines/dto"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// BuildFineOrderID: order id unik per percobaan bayar, fine_id ikut dibawa
// supaya webhook bisa menautkan balik ke dendanya.
func BuildFineOrderID(fineID uuid.UUID) string {
	return fmt.Sprintf("FINE-%s-%d", fineID, time.Now().UnixNano())
}

// ParseFineOrderID mengambil fine_id dari order id bentukan BuildFineOrderID.
func ParseFineOrderID(orderID string) (uuid.UUID, error) {
	parts := strings.Split(orderID, "-")
	// FINE-<uuid 5 segmen>-<nano>
	if len(parts) != 7 || parts[0] != "FINE" {
		return uuid.Nil, fmt.Errorf("order id tidak dikenal: %s", orderID)
	}
	return uuid.Parse(strings.Join(parts[1:6], "-"))
}

// GenerateSnapToken membuat token Snap Midtrans untuk pembayaran satu denda.
func GenerateSnapToken(orderID string, fine dto.FineResponse, name string, email string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(fine.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	return resp.Token, nil
}

// VerifyMidtransSignature: SHA512(order_id + status_code + gross_amount + server_key)
// harus sama dengan signature_key di payload notifikasi.
func VerifyMidtransSignature(orderID, statusCode, grossAmount, signatureKey string) bool {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + configs.MidtransKey))
	return hex.EncodeToString(sum[:]) == strings.ToLower(signatureKey)
}
