package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateFacultyHandler godoc
// @Summary      Create a faculty
// @Description  Units and programs without an id get a generated one
// @Tags         Facultades
// @Accept       json
// @Produce      json
// @Param        body  body      dto.FacultyRequest  true  "Faculty"
// @Success      201   {object}  models.Faculty
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Router       /facultades [post]
func CreateFacultyHandler(svc *services.FacultyService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.FacultyRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		fac, err := svc.Create(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fac)
	}
}

// ListFacultiesHandler godoc
// @Summary      List faculties
// @Tags         Facultades
// @Produce      json
// @Success      200  {array}  models.Faculty
// @Router       /facultades [get]
func ListFacultiesHandler(svc *services.FacultyService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		faculties, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(faculties)
	}
}

// GetFacultyHandler godoc
// @Summary      Get a faculty
// @Tags         Facultades
// @Produce      json
// @Param        id   path      string  true  "Faculty ObjectID"
// @Success      200  {object}  models.Faculty
// @Failure      404  {object}  dto.ErrorResponse "faculty not found"
// @Router       /facultades/{id} [get]
func GetFacultyHandler(svc *services.FacultyService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		fac, err := svc.Get(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fac)
	}
}

// UpdateFacultyHandler godoc
// @Summary      Update a faculty
// @Tags         Facultades
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Faculty ObjectID"
// @Param        body  body      dto.FacultyUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Faculty
// @Router       /facultades/{id} [put]
func UpdateFacultyHandler(svc *services.FacultyService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.FacultyUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		fac, err := svc.Update(ctx, id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fac)
	}
}

// DeleteFacultyHandler godoc
// @Summary      Delete a faculty
// @Tags         Facultades
// @Param        id   path      string  true  "Faculty ObjectID"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /facultades/{id} [delete]
func DeleteFacultyHandler(svc *services.FacultyService, timeout time.Duration) fiber.Handler {
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
