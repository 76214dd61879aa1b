package screens

import (
	"context"
	"slices"

	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

// fanOut bounds the requests a screen issues in parallel.
const fanOut = 4

func run(ctx context.Context, scope *state.Scope, fn func(context.Context) error) error {
	ctx, release := scope.Bind(ctx)
	defer release()
	return fn(ctx)
}

func replaceWith[T any](v T) func(T) T {
	return func(T) T { return v }
}

// pickTags returns the tags named by ids, in ids order. Unknown ids are
// skipped.
func pickTags(all []domain.Tag, ids []domain.ID) []domain.Tag {
	byID := make(map[domain.ID]domain.Tag, len(all))
	for _, t := range all {
		byID[t.ID] = t
	}
	out := make([]domain.Tag, 0, len(ids))
	for _, id := range ids {
		if t, ok := byID[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// hasAllTags reports whether have contains every id in want.
func hasAllTags(have, want []domain.ID) bool {
	for _, id := range want {
		if !slices.Contains(have, id) {
			return false
		}
	}
	return true
}
