// Package proxytest has native-side fixtures for exercising proxyiter.
package proxytest

import (
	"github.com/anacrolix/proxyiter"
)

// ExampleObject stands in for a natively owned object.
type ExampleObject struct {
	Value         int
	OnDestruction func()
}

func (me *ExampleObject) Destroy() {
	if me.OnDestruction != nil {
		me.OnDestruction()
	}
}

// ExampleProxy borrows an ExampleObject.
type ExampleProxy struct {
	impl *ExampleObject
}

func NewExampleProxy(impl *ExampleObject) *ExampleProxy {
	return &ExampleProxy{impl}
}

func (me *ExampleProxy) Value() int {
	return me.impl.Value
}

func (me *ExampleProxy) Impl() *ExampleObject {
	return me.impl
}

// MakeArrayOfProxies builds an array of non-owning proxies over objs.
func MakeArrayOfProxies(objs []ExampleObject) *proxyiter.Array {
	return proxyiter.MakeNonOwningArray(objs, func(obj *ExampleObject) any {
		return NewExampleProxy(obj)
	})
}

// MakeArrayOfProxiesForTesting has two proxies with values 0 and 1.
func MakeArrayOfProxiesForTesting() *proxyiter.Array {
	return MakeArrayOfProxies([]ExampleObject{{Value: 0}, {Value: 1}})
}
