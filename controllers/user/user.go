package user

import (
	"cargo-tracking/logger"
	"cargo-tracking/types"
	"cargo-tracking/utils"

	"github.com/gofiber/fiber/v2"
)

// GetUserInfo returns the profile of the authenticated user.
func GetUserInfo(c *fiber.Ctx) error {
	caller, err := utils.CallerFromContext(c)
	if err != nil {
		logger.Error("Failed to resolve user from token", err)
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User info retrieved successfully",
		Data:    caller,
	})
}
