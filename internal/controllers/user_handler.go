package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"academic-events/dto"
	"academic-events/internal/services"
	"academic-events/utils"
)

// CreateUserHandler godoc
// @Summary      Create a user
// @Description  Passwords are stored as bcrypt hashes and never returned
// @Tags         Usuarios
// @Accept       json
// @Produce      json
// @Param        body  body      dto.UserRequest  true  "User"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse "invalid input"
// @Failure      409   {object}  dto.ErrorResponse "id or email already taken"
// @Router       /usuarios [post]
func CreateUserHandler(svc *services.UserService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.UserRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		user, err := svc.Create(ctx, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// ListUsersHandler godoc
// @Summary      List users
// @Tags         Usuarios
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /usuarios [get]
func ListUsersHandler(svc *services.UserService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		users, err := svc.ListUsers(ctx)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(users)
	}
}

// GetUserHandler godoc
// @Summary      Get a user
// @Tags         Usuarios
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse "malformed id"
// @Failure      404  {object}  dto.ErrorResponse "user not found"
// @Router       /usuarios/{id} [get]
func GetUserHandler(svc *services.UserService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.UserID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		user, err := svc.GetUser(ctx, id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}

// UpdateUserHandler godoc
// @Summary      Update a user
// @Description  A supplied password list replaces the stored one and is hashed again
// @Tags         Usuarios
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "User id"
// @Param        body  body      dto.UserUpdateRequest  true  "Fields to change"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse "malformed id or invalid input"
// @Failure      404   {object}  dto.ErrorResponse "user not found"
// @Failure      409   {object}  dto.ErrorResponse "email already taken"
// @Router       /usuarios/{id} [put]
func UpdateUserHandler(svc *services.UserService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.UserID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}
		var body dto.UserUpdateRequest
		if err := parseBody(c, &body); err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		user, err := svc.Update(ctx, id, body)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(user)
	}
}

// DeleteUserHandler godoc
// @Summary      Delete a user
// @Tags         Usuarios
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      404  {object}  dto.ErrorResponse "user not found"
// @Router       /usuarios/{id} [delete]
func DeleteUserHandler(svc *services.UserService, timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := utils.UserID(c.Params("id"))
		if err != nil {
			return respondError(c, err)
		}

		ctx, cancel := requestContext(c, timeout)
		defer cancel()

		if err := svc.Delete(ctx, id); err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.DeleteResponse{Deleted: strconv.Itoa(id)})
	}
}
