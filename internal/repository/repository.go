package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rakibhassannayem/clubSphere-server/internal/domain"
)

// Collection names match the original deployment so existing data stays valid.
const (
	colUsers         = "users"
	colClubs         = "clubs"
	colMemberships   = "memberShips"
	colEvents        = "events"
	colRegistrations = "eventRegistrations"
	colPayments      = "payments"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// storeErr classifies driver failures into the dependency taxonomy the
// service layer reports on. Unknown errors pass through wrapped.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDependencyTimeout)
	case mongo.IsNetworkError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDependencyUnavailable)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
