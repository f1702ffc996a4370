package helpers

import (
	"fmt"
	"regexp"
	"strings"

	"autocare-service/internal/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Success bool        `json:"success"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(response{
		Data:    data,
		Message: message,
		Success: true,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HTTPCode(err)
	return ctx.Status(code).JSON(response{
		Data:    nil,
		Message: err.Error(),
		Success: false,
	})
}

var msisdnPattern = regexp.MustCompile(`^254[17]\d{8}$`)

// NormalizeMsisdn converts local phone formats (07XXXXXXXX, +2547XXXXXXXX)
// to the canonical 2547XXXXXXXX form the gateway expects.
func NormalizeMsisdn(phone string) (string, error) {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	if strings.HasPrefix(p, "0") && len(p) == 10 {
		p = "254" + p[1:]
	}
	if !msisdnPattern.MatchString(p) {
		return "", errors.BadRequest(fmt.Sprintf("invalid phone number format: %s", phone))
	}
	return p, nil
}
