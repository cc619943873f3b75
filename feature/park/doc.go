// Package park serves the queue-time and performance-time caches of the
// active park over HTTP and exposes the update controls.
//
// # Routes
//
//	GET    /parks/active             scheduler state
//	PUT    /parks/active/:parkId     switch the refreshed park
//	DELETE /parks/:parkId/cache      drop a park's caches
//	GET    /queue-times[/:itemId]    attractions of the active park
//	GET    /performances[/:itemId]   performances of the active park
//	POST   /sync/full                full sync now
//	POST   /sync/start|stop|resume   timer control
//
// Item ids may be given in any representation the upstream uses; "101" and
// 101 address the same entry.
package park
