package web

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/goserg/bzstats/internal/service"
)

// parseQuery applies the request's query string on top of base.
func parseQuery(ctx *fiber.Ctx, base service.Query) (service.Query, queryRequest, error) {
	var req queryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return base, req, fmt.Errorf("%w: %w", service.ErrInvalidQuery, err)
	}
	q := base
	if err := q.Apply(req.params()); err != nil {
		return base, req, err
	}
	return q, req, nil
}

type multierr interface {
	Unwrap() []error
}

// unwrap flattens joined errors into their leaves.
func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}
