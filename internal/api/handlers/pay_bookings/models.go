package pay_bookings

import (
	payBookings "github.com/m04kA/SMC-GymService/internal/usecase/pay_bookings"
)

// PaymentLineResponse одна оплаченная позиция
type PaymentLineResponse struct {
	BookingRef string  `json:"bookingRef"`
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
}

// PaymentResponse HTTP ответ с результатом оплаты
type PaymentResponse struct {
	MemberID string                `json:"memberId"`
	Lines    []PaymentLineResponse `json:"lines"`
	Total    float64               `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *payBookings.Response) *PaymentResponse {
	out := &PaymentResponse{
		MemberID: resp.MemberID,
		Lines:    make([]PaymentLineResponse, 0, len(resp.Lines)),
		Total:    resp.Total,
	}
	for _, line := range resp.Lines {
		out.Lines = append(out.Lines, PaymentLineResponse{
			BookingRef: line.BookingRef,
			Type:       line.Type,
			Amount:     line.Amount,
		})
	}
	return out
}
