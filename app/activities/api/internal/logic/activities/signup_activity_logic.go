// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"context"

	"mergington-hub/app/activities/api/internal/svc"
	"mergington-hub/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type SignupActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Sign up a student for an activity
func NewSignupActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SignupActivityLogic {
	return &SignupActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SignupActivityLogic) SignupActivity(req *types.SignupRequest) (*types.MessageResponse, error) {
	name := decodeActivityName(req.Name)

	msg, err := l.svcCtx.Registry.Signup(name, req.Email)
	l.svcCtx.Metrics.ObserveSignup(name, err)
	if err != nil {
		l.Infof("signup rejected: activity=%q email=%q err=%v", name, req.Email, err)
		return nil, err
	}

	l.svcCtx.Metrics.SetParticipants(name, l.svcCtx.Registry.ParticipantCount(name))
	l.Infof("signup ok: activity=%q email=%q", name, req.Email)
	return &types.MessageResponse{Message: msg}, nil
}
