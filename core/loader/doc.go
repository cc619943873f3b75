// Package loader registers the HTTP features of the service.
//
// A feature owns its routes and is added to a Manager before the server
// starts:
//
//	mgr := loader.NewManager()
//	mgr.Register(parkFeature)
//	mgr.Register(integrityFeature)
//	if err := mgr.LoadAll(app); err != nil { ... }
//
// Features load in registration order. Disabled features are skipped, and
// the first Load error aborts LoadAll.
package loader
