// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activities

import (
	"context"

	"mergington-hub/app/activities/api/internal/svc"
	"mergington-hub/app/activities/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListActivitiesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// List all activities
func NewListActivitiesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListActivitiesLogic {
	return &ListActivitiesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListActivitiesLogic) ListActivities() (types.ListActivitiesResponse, error) {
	snapshot := l.svcCtx.Registry.List()

	resp := make(types.ListActivitiesResponse, len(snapshot))
	for name, act := range snapshot {
		resp[name] = types.ActivityInfo{
			Description:     act.Description,
			Schedule:        act.Schedule,
			MaxParticipants: act.MaxParticipants,
			Participants:    act.Participants,
		}
	}
	return resp, nil
}
