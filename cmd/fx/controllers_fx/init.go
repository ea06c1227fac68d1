package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/julfkar-mu/khidmat/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewMemberController),
	fx.Provide(controllers.NewLedgerController),
	fx.Provide(controllers.NewReportController))
