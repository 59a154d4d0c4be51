// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event implements the synchronous change notification that
// links data sources, ranges, mappers, and the axis layer.
//
// Every stateful object that others cache values from embeds a
// Notifier. A setter that changes observable state calls Notify before
// it returns, so the next read of any dependent cache observes the
// change. Listeners run synchronously on the notifying goroutine.
package event

// An Event names a kind of change.
type Event string

const (
	// Updated is fired by ranges and mappers when their effective
	// bounds or scale change.
	Updated Event = "updated"

	// DataChanged is fired by data sources when their values
	// change.
	DataChanged Event = "data_changed"
)

// A Subscription identifies a callback registered with a Notifier.
// The zero Subscription is never returned by Subscribe.
type Subscription int

type listener struct {
	id Subscription
	ev Event
	fn func()
}

// A Notifier is a list of callbacks keyed by Event. The zero value is
// ready to use.
//
// A Notifier is not safe for concurrent use; the plotting core runs
// on a single goroutine.
type Notifier struct {
	next      Subscription
	listeners []listener
}

// Subscribe arranges for fn to be called every time ev is fired on n.
// Callbacks run in subscription order.
func (n *Notifier) Subscribe(ev Event, fn func()) Subscription {
	n.next++
	n.listeners = append(n.listeners, listener{n.next, ev, fn})
	return n.next
}

// Unsubscribe removes the callback registered as s. It is a no-op if
// s is not registered.
func (n *Notifier) Unsubscribe(s Subscription) {
	for i, l := range n.listeners {
		if l.id == s {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Notify calls every callback subscribed to ev. Callbacks may
// subscribe or unsubscribe; such changes take effect on the next
// Notify.
func (n *Notifier) Notify(ev Event) {
	ls := n.listeners
	for _, l := range ls {
		if l.ev == ev {
			l.fn()
		}
	}
}

// Len returns the number of registered callbacks.
func (n *Notifier) Len() int {
	return len(n.listeners)
}
