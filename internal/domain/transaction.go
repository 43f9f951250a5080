package domain

import "time"

// Transaction is a completed payment record
type Transaction struct {
	ID        string
	Type      string // CLS, PVT, LKR, LKR-VIP
	Amount    float64
	Timestamp time.Time
	MemberID  string
}
