package usecase

import (
	"errors"
	"fmt"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
)

// collect folds a child-operation failure into the parent's notification
// without aborting the cascade; remaining children are still attempted.
func collect(n *domain.Notification, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		for _, m := range appErr.Messages {
			n.Handle(m)
		}
		return
	}
	n.Handle(fmt.Sprintf(domain.MsgUnexpected, err))
}

// validate runs an entity rule set against a fresh notification and
// converts failures into a validation error. No repository call happens
// when this fails.
func validate(rules []domain.Rule) error {
	notif := domain.NewNotification()
	if !domain.Check(notif, rules) {
		return apperror.ValidationFailed(notif.GetNotification()...)
	}
	return nil
}

func unexpected(err error) *apperror.AppError {
	return apperror.Persistence(err, fmt.Sprintf(domain.MsgUnexpected, err))
}
