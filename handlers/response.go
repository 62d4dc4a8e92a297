package handlers

import (
	"context"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

type messageResponse struct {
	Message string `json:"message"`
}

func sendMessage(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(messageResponse{Message: msg})
}

// label turns a repository entity name such as "game clue" into "Game clue".
func label(entity string) string {
	r, size := utf8.DecodeRuneInString(entity)
	if r == utf8.RuneError {
		return entity
	}
	return string(unicode.ToUpper(r)) + entity[size:]
}

// paramID reads a positive integer :id route parameter.
func paramID(c *fiber.Ctx) (int64, error) {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fieldError("id", "ID must be a positive integer")
	}
	return id, nil
}

// The handlers below are shared by every resource. Entity names come from
// the repositories so that messages read "Clue not found" and so on.

func listHandler[T any](list func(context.Context) ([]T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := list(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(rows)
	}
}

func getHandler[T any](get func(context.Context, int64) (*T, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		row, err := get(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(row)
	}
}

func createHandler[R, In, T any](create func(context.Context, In) (*T, error), input func(*R) In) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(R)
		if err := bind(c, req); err != nil {
			return err
		}
		row, err := create(c.UserContext(), input(req))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(row)
	}
}

func updateHandler[R, In any](entity string, update func(context.Context, int64, In) (bool, error), input func(*R) In) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		req := new(R)
		if err := bind(c, req); err != nil {
			return err
		}
		ok, err := update(c.UserContext(), id, input(req))
		if err != nil {
			return err
		}
		if !ok {
			return sendMessage(c, fiber.StatusNotFound, label(entity)+" not found or no changes made")
		}
		return sendMessage(c, fiber.StatusOK, label(entity)+" updated successfully")
	}
}

func deleteHandler(entity string, remove func(context.Context, int64) (bool, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c)
		if err != nil {
			return err
		}
		ok, err := remove(c.UserContext(), id)
		if err != nil {
			return err
		}
		if !ok {
			return sendMessage(c, fiber.StatusNotFound, label(entity)+" not found")
		}
		return sendMessage(c, fiber.StatusOK, label(entity)+" deleted successfully")
	}
}
