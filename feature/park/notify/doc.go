// Package notify announces cache changes.
//
// The Bus is an in-process registry with explicit unsubscribe handles. The
// sync coordinator publishes at most one Signal per event per cycle, and only
// when the cycle accepted at least one record. A RedisBridge can be attached
// to forward signals to other processes:
//
//	bus := notify.NewBus(logger)
//	sub := bus.Subscribe(notify.QueueTimeUpdated, func(s notify.Signal) { ... })
//	defer sub.Unsubscribe()
//
//	notify.NewRedisBridge(client, "park", logger).Attach(bus)
package notify
