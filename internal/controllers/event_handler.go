package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateEventHandler godoc
// @Summary      Create an event
// @Description  Validates capacity, organizers and facility availability before storing the event
// @Tags         Eventos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.EventRequest  true  "Event"
// @Success      201   {object}  models.Event
// @Failure      400   {object}  dto.ErrorResponse "invalid input or rule failure"
// @Failure      404   {object}  dto.ErrorResponse "organizer not found"
// @Failure      500   {object}  dto.ErrorResponse "internal server error"
// @Router       /eventos [post]
func CreateEventHandler(svc *services.EventService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EventRequest
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

// ListEventsHandler godoc
// @Summary      List events
// @Tags         Eventos
// @Produce      json
// @Success      200  {array}   models.Event
// @Failure      500  {object}  dto.ErrorResponse "internal server error"
// @Router       /eventos [get]
func ListEventsHandler(svc *services.EventService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		events, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(events)
	}
}

// GetEventHandler godoc
// @Summary      Get an event
// @Tags         Eventos
// @Produce      json
// @Param        id   path      string  true  "Event ObjectID"
// @Success      200  {object}  models.Event
// @Failure      400  {object}  dto.ErrorResponse "malformed id"
// @Failure      404  {object}  dto.ErrorResponse "event not found"
// @Router       /eventos/{id} [get]
func GetEventHandler(svc *services.EventService, timeout time.Duration) fiber.Handler {
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

// UpdateEventHandler godoc
// @Summary      Update an event
// @Description  Only supplied fields change; organizacion may be null. All event rules run on the result.
// @Tags         Eventos
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Event ObjectID"
// @Param        body  body      dto.EventUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Event
// @Failure      400   {object}  dto.ErrorResponse "malformed id, invalid input or rule failure"
// @Failure      404   {object}  dto.ErrorResponse "event not found"
// @Router       /eventos/{id} [put]
func UpdateEventHandler(svc *services.EventService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.EventUpdateRequest
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

// DeleteEventHandler godoc
// @Summary      Delete an event
// @Tags         Eventos
// @Produce      json
// @Param        id   path      string  true  "Event ObjectID"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse "malformed id"
// @Failure      404  {object}  dto.ErrorResponse "event not found"
// @Router       /eventos/{id} [delete]
func DeleteEventHandler(svc *services.EventService, timeout time.Duration) fiber.Handler {
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
