// Package userdata manages the ~/.loadout/ directory: path resolution for
// the home and template payload roots, seeding the embedded default
// payload, and the installation health check behind doctor.
package userdata
