package object

import (
	"math/big"
	"time"

	"github.com/anthonyraymond/randomizer/pkg/dates"
	"github.com/anthonyraymond/randomizer/pkg/number"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func registerBuiltins(r *Registry) {
	RegisterFunc(r, func(c *Context) (time.Time, error) {
		return dates.Date(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (*time.Location, error) {
		return dates.Zone(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (time.Duration, error) {
		return dates.TimeOfDay(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (big.Int, error) {
		return *number.BigInt(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (*big.Int, error) {
		return number.BigInt(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (big.Float, error) {
		return *number.BigFloat(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (*big.Float, error) {
		return number.BigFloat(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (decimal.Decimal, error) {
		return number.Decimal(c.Source()), nil
	})
	RegisterFunc(r, func(c *Context) (uuid.UUID, error) {
		id, err := uuid.NewRandomFromReader(c.Source())
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to generate uuid")
		}
		return id, nil
	})
}
