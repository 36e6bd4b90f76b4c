package context

import (
	"context"

	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/model"
)

func WithPrincipal(ctx context.Context, p *model.Principal) context.Context {
	return context.WithValue(ctx, constant.PrincipalKey, p)
}

func GetPrincipal(ctx context.Context) (*model.Principal, bool) {
	v := ctx.Value(constant.PrincipalKey)
	if v == nil {
		return nil, false
	}
	p, ok := v.(*model.Principal)
	return p, ok && p != nil
}
