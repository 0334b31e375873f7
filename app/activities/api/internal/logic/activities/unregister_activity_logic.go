// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"context"

	"mergington-hub/app/activities/api/internal/svc"
	"mergington-hub/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type UnregisterActivityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// Unregister a student from an activity
func NewUnregisterActivityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UnregisterActivityLogic {
	return &UnregisterActivityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UnregisterActivityLogic) UnregisterActivity(req *types.UnregisterRequest) (*types.MessageResponse, error) {
	name := decodeActivityName(req.Name)

	msg, err := l.svcCtx.Registry.Unregister(name, req.Email)
	l.svcCtx.Metrics.ObserveUnregister(name, err)
	if err != nil {
		l.Infof("unregister rejected: activity=%q email=%q err=%v", name, req.Email, err)
		return nil, err
	}

	l.svcCtx.Metrics.SetParticipants(name, l.svcCtx.Registry.ParticipantCount(name))
	l.Infof("unregister ok: activity=%q email=%q", name, req.Email)
	return &types.MessageResponse{Message: msg}, nil
}
