package currencyHandler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/handlerUtil"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/log"
)

func (h *CurrencyHandler) GetRates(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get exchange rates request")

	base := ctx.Params("base")
	if base == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("base currency is required"), ctx.Path())
	}

	rates, err := h.currencyService.GetRates(c, base)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_rates")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, rates)
	}
}

func (h *CurrencyHandler) Convert(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing currency conversion request")

	from := ctx.Query("from")
	to := ctx.Query("to")
	if from == "" || to == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("from and to currencies are required"), ctx.Path())
	}

	amount, err := strconv.ParseFloat(ctx.Query("amount"), 64)
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("amount must be a number"), ctx.Path())
	}

	converted, err := h.currencyService.Convert(c, from, to, amount)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "convert_currency")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, converted)
	}
}
