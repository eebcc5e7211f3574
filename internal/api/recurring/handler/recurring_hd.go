package recurringHandler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"

	"github.com/ademomeragic/budget-tracker-sub000/internal/api/recurring"
	"github.com/ademomeragic/budget-tracker-sub000/internal/entity"
	contextPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/context"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/handlerUtil"
	jwtPkg "github.com/ademomeragic/budget-tracker-sub000/pkg/jwt"
	"github.com/ademomeragic/budget-tracker-sub000/pkg/log"
)

func (h *RecurringHandler) CreateRecurring(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create recurring transaction request")

	var req recurring.CreateRecurringRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.recurringService.CreateRecurring(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_recurring")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, fiber.Map{
			"message": "Recurring transaction created successfully",
		})
	}
}

func (h *RecurringHandler) GetRecurringByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get recurring transaction by ID request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("recurring transaction ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	rt, err := h.recurringService.GetRecurringByID(c, id, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_recurring")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, makeRecurringResponse(rt))
	}
}

func (h *RecurringHandler) GetRecurringByUserID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get recurring transactions by user ID request")

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	recurringTransactions, err := h.recurringService.GetRecurringByUserID(c, userData.ID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_recurring_list")
	}

	res := make([]recurring.RecurringResponse, 0, len(recurringTransactions))
	for _, rt := range recurringTransactions {
		res = append(res, makeRecurringResponse(rt))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, res)
	}
}

func (h *RecurringHandler) UpdateRecurring(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update recurring transaction request")

	var req recurring.UpdateRecurringRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	req.UserID = userData.ID

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.recurringService.UpdateRecurring(c, req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_recurring")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Recurring transaction updated successfully",
		})
	}
}

func (h *RecurringHandler) DeleteRecurring(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete recurring transaction request")

	id := ctx.Params("id")
	if id == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("recurring transaction ID is required"), ctx.Path())
	}

	userData, err := jwtPkg.GetUserLoginData(ctx)
	if err != nil {
		return errHandler.HandleUnauthorized(ctx, requestID, "Unauthorized")
	}

	if err := h.recurringService.DeleteRecurring(c, id, userData.ID); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_recurring")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"message": "Recurring transaction deleted successfully",
		})
	}
}

func makeRecurringResponse(rt entity.RecurringTransaction) recurring.RecurringResponse {
	res := recurring.RecurringResponse{
		ID:          rt.ID,
		UserID:      rt.UserID,
		WalletID:    rt.WalletID,
		CategoryID:  rt.CategoryID,
		Type:        rt.Type,
		Amount:      rt.Amount,
		Description: rt.Description,
		Frequency:   rt.Frequency,
		StartDate:   rt.StartDate.Format(time.RFC3339),
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   rt.UpdatedAt.Format(time.RFC3339),
	}

	if rt.EndDate != nil {
		endDate := rt.EndDate.Format(time.RFC3339)
		res.EndDate = &endDate
	}
	if rt.LastExecutedAt != nil {
		lastExecutedAt := rt.LastExecutedAt.Format(time.RFC3339)
		res.LastExecutedAt = &lastExecutedAt
	}

	return res
}
