package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/models"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateFacilityHandler godoc
// @Summary      Create a facility
// @Tags         Instalaciones
// @Accept       json
// @Produce      json
// @Param        body  body      models.Facility  true  "Facility"
// @Success      201   {object}  models.Facility
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Failure      409   {object}  dto.ErrorResponse "id already taken"
// @Router       /instalaciones [post]
func CreateFacilityHandler(svc *services.FacilityService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Facility
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		f, err := svc.Create(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// ListFacilitiesHandler godoc
// @Summary      List facilities
// @Tags         Instalaciones
// @Produce      json
// @Success      200  {array}  models.Facility
// @Router       /instalaciones [get]
func ListFacilitiesHandler(svc *services.FacilityService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		facilities, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(facilities)
	}
}

// GetFacilityHandler godoc
// @Summary      Get a facility
// @Tags         Instalaciones
// @Produce      json
// @Param        id   path      string  true  "Facility id"
// @Success      200  {object}  models.Facility
// @Failure      404  {object}  dto.ErrorResponse "facility not found"
// @Router       /instalaciones/{id} [get]
func GetFacilityHandler(svc *services.FacilityService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.FacilityID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		f, err := svc.Get(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

// UpdateFacilityHandler godoc
// @Summary      Update a facility
// @Tags         Instalaciones
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "Facility id"
// @Param        body  body      dto.FacilityUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Facility
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Failure      404   {object}  dto.ErrorResponse "facility not found"
// @Router       /instalaciones/{id} [put]
func UpdateFacilityHandler(svc *services.FacilityService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.FacilityID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.FacilityUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		f, err := svc.Update(ctx, id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(f)
	}
}

// DeleteFacilityHandler godoc
// @Summary      Delete a facility
// @Tags         Instalaciones
// @Produce      json
// @Param        id   path      string  true  "Facility id"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse "facility not found"
// @Router       /instalaciones/{id} [delete]
func DeleteFacilityHandler(svc *services.FacilityService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.FacilityID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		if err := svc.Delete(ctx, id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.DeleteResponse{Deleted: id})
	}
}
