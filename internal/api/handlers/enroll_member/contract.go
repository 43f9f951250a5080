package enroll_member

import (
	"context"

	enrollMember "github.com/m04kA/SMC-GymService/internal/usecase/enroll_member"
)

type EnrollMemberUseCase interface {
	Execute(ctx context.Context, req *enrollMember.Request) (*enrollMember.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
