// Package ports defines the interfaces between layers. Repository ports are
// implemented by the backend adapter and, with validation in front, by the
// application services; inbound handlers depend only on these ports.
package ports
