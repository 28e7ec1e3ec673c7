package controllers_fx

import (
	"go.uber.org/fx"

	"alphagym/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewCoachController),
	fx.Provide(controllers.NewMembershipController),
	fx.Provide(controllers.NewDashboardController))
