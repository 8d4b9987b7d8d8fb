package usecase

import (
	"context"

	stateDomain "github.com/allisson/passvault/internal/state/domain"
)

// GetValue reads field into a fresh T.
func GetValue[T any](
	ctx context.Context,
	state StateUseCase,
	field stateDomain.Field,
	opts stateDomain.StorageOptions,
) (T, bool, error) {
	var value T
	found, err := state.Get(ctx, field, &value, opts)
	return value, found, err
}

// UpdateValue atomically replaces field with fn(current). fn sees found=false
// when the field is absent.
func UpdateValue[T any](
	ctx context.Context,
	state StateUseCase,
	field stateDomain.Field,
	opts stateDomain.StorageOptions,
	fn func(current T, found bool) (T, error),
) error {
	policy, err := field.Policy()
	if err != nil {
		return err
	}

	scope := opts.UserID
	if policy.Scope == stateDomain.ScopeGlobal {
		scope = stateDomain.GlobalScope
	}

	return state.Update(ctx, scope, func(ctx context.Context) error {
		current, found, err := GetValue[T](ctx, state, field, opts)
		if err != nil {
			return err
		}
		next, err := fn(current, found)
		if err != nil {
			return err
		}
		return state.Set(ctx, field, next, opts)
	})
}
