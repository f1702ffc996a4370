package middleware

import (
	"fmt"
	"strings"

	"autocare-service/internal/module/booking/models/entity"
	"autocare-service/internal/module/booking/repositories"
	"autocare-service/internal/pkg/errors"
	"autocare-service/internal/pkg/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log  *otelzap.Logger
	Repo repositories.Repositories
}

func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	token, found := strings.CutPrefix(auth, "Bearer ")
	if !found || token == "" {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}

	resp, err := m.Repo.ValidateToken(ctx.Context(), token)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !resp.IsValid {
		m.Log.Ctx(ctx.UserContext()).Error("error validate token")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	ctx.Locals("user_id", resp.UserID)
	ctx.Locals("email_user", resp.EmailUser)
	ctx.Locals("role", resp.Role)

	return ctx.Next()
}

// RequireOperator gates the operator route group. Must run after
// ValidateToken.
func (m *Middleware) RequireOperator(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != string(entity.RoleOperator) {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("role %s attempted operator route", role))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("operator access required"))
	}
	return ctx.Next()
}

// RequireStaff admits staff and operators.
func (m *Middleware) RequireStaff(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != string(entity.RoleStaff) && role != string(entity.RoleOperator) {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("role %s attempted staff route", role))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("staff access required"))
	}
	return ctx.Next()
}
