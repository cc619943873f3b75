// Package middleware groups the Fiber middleware registered in front of every
// feature route.
//
//   - rayid: keeps or assigns the X-Ray-ID of a request and stores it under the
//     "ray_id" local for logger.WithRayID.
//   - auth: rejects requests whose X-API-Key does not match the configured key.
//     An empty key disables the check.
//
// Register rayid first so that rejected requests are still traceable.
package middleware
