package proxyiter

import (
	g "github.com/anacrolix/generics"
)

// Converter narrows a raw foreign element to T. It must not panic; None means the element isn't
// a T.
type Converter[T any] func(raw any) g.Option[T]

// As converts by type assertion.
func As[T any](raw any) (ret g.Option[T]) {
	ret.Value, ret.Ok = raw.(T)
	return
}

// Map converts with As and then applies f.
func Map[From, To any](f func(From) To) Converter[To] {
	return func(raw any) (ret g.Option[To]) {
		from, ok := raw.(From)
		if ok {
			ret.Set(f(from))
		}
		return
	}
}
