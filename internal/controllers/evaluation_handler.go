package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateEvaluationHandler godoc
// @Summary      Evaluate an event
// @Description  Only an active academic secretary may create an evaluation
// @Tags         Evaluaciones
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EvaluationRequest  true  "Evaluation"
// @Success      201   {object}  models.Evaluation
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Failure      403   {object}  dto.ErrorResponse "evaluator is not an academic secretary"
// @Failure      404   {object}  dto.ErrorResponse "user not found"
// @Router       /evaluaciones [post]
func CreateEvaluationHandler(svc *services.EvaluationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EvaluationRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		ev, err := svc.Create(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(ev)
	}
}

// ListEvaluationsHandler godoc
// @Summary      List evaluations
// @Tags         Evaluaciones
// @Produce      json
// @Success      200  {array}   models.Evaluation
// @Router       /evaluaciones [get]
func ListEvaluationsHandler(svc *services.EvaluationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		evals, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(evals)
	}
}

// GetEvaluationHandler godoc
// @Summary      Get an evaluation
// @Tags         Evaluaciones
// @Produce      json
// @Param        id   path      string  true  "Evaluation ObjectID"
// @Success      200  {object}  models.Evaluation
// @Failure      400  {object}  dto.ErrorResponse "malformed id"
// @Failure      404  {object}  dto.ErrorResponse "evaluation not found"
// @Router       /evaluaciones/{id} [get]
func GetEvaluationHandler(svc *services.EvaluationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		ev, err := svc.Get(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ev)
	}
}

// UpdateEvaluationHandler godoc
// @Summary      Update an evaluation
// @Tags         Evaluaciones
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "Evaluation ObjectID"
// @Param        body  body      dto.EvaluationUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Evaluation
// @Failure      400   {object}  dto.ErrorResponse "malformed id or invalid input"
// @Failure      404   {object}  dto.ErrorResponse "evaluation not found"
// @Router       /evaluaciones/{id} [put]
func UpdateEvaluationHandler(svc *services.EvaluationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.EvaluationUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		ev, err := svc.Update(ctx, id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(ev)
	}
}

// DeleteEvaluationHandler godoc
// @Summary      Delete an evaluation
// @Tags         Evaluaciones
// @Produce      json
// @Param        id   path      string  true  "Evaluation ObjectID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse "evaluation not found"
// @Router       /evaluaciones/{id} [delete]
func DeleteEvaluationHandler(svc *services.EvaluationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		if err := svc.Delete(ctx, id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.DeleteResponse{Deleted: id.Hex()})
	}
}
