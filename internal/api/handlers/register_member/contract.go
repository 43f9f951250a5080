package register_member

import (
	"context"

	"github.com/m04kA/SMC-GymService/internal/service/members/models"
)

type MemberService interface {
	Register(ctx context.Context, req *models.RegisterMemberRequest) (*models.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
