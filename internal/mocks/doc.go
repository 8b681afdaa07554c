// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, these
// function-field fakes can be reused across test packages. Set the Fn
// field for custom behavior; otherwise the default response values are
// returned.
//
// Usage:
//
//	import "github.com/flashdeck/flashdeck-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    cardStore := &mocks.MockCardStore{
//	        GetByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
//	            return nil, store.ErrCardNotFound
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
