package pay_bookings

// Request модель запроса на оплату всех неоплаченных бронирований участника
type Request struct {
	MemberID string // ID участника
}

// PaymentLine одна оплаченная позиция
type PaymentLine struct {
	BookingRef string  // ID занятия или шкафчика
	Type       string  // Тег транзакции: CLS, PVT, LKR, LKR-VIP
	Amount     float64 // Сумма с учётом скидки, 2 знака
}

// Response модель ответа с результатом оплаты
type Response struct {
	MemberID string
	Lines    []PaymentLine
	Total    float64
}
