package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateOrganizationHandler godoc
// @Summary      Create an organization
// @Tags         Organizaciones
// @Accept       json
// @Produce      json
// @Param        body  body      dto.OrganizationRequest  true  "Organization"
// @Success      201   {object}  models.Organization
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Router       /organizaciones [post]
func CreateOrganizationHandler(svc *services.OrganizationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.OrganizationRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		org, err := svc.Create(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(org)
	}
}

// ListOrganizationsHandler godoc
// @Summary      List organizations
// @Tags         Organizaciones
// @Produce      json
// @Success      200  {array}  models.Organization
// @Router       /organizaciones [get]
func ListOrganizationsHandler(svc *services.OrganizationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		orgs, err := svc.List(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(orgs)
	}
}

// GetOrganizationHandler godoc
// @Summary      Get an organization
// @Tags         Organizaciones
// @Produce      json
// @Param        id   path      string  true  "Organization ObjectID"
// @Success      200  {object}  models.Organization
// @Failure      404  {object}  dto.ErrorResponse "organization not found"
// @Router       /organizaciones/{id} [get]
func GetOrganizationHandler(svc *services.OrganizationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		org, err := svc.Get(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(org)
	}
}

// UpdateOrganizationHandler godoc
// @Summary      Update an organization
// @Tags         Organizaciones
// @Accept       json
// @Produce      json
// @Param        id    path      string                         true  "Organization ObjectID"
// @Param        body  body      dto.OrganizationUpdateRequest  true  "Fields to change"
// @Success      200   {object}  models.Organization
// @Router       /organizaciones/{id} [put]
func UpdateOrganizationHandler(svc *services.OrganizationService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.Oid(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.OrganizationUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		org, err := svc.Update(ctx, id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(org)
	}
}

// DeleteOrganizationHandler godoc
// @Summary      Delete an organization
// @Tags         Organizaciones
// @Param        id   path      string  true  "Organization ObjectID"
// @Success      200  {object}  dto.DeleteResponse
// @Router       /organizaciones/{id} [delete]
func DeleteOrganizationHandler(svc *services.OrganizationService, timeout time.Duration) fiber.Handler {
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
