// Package queries contains the read side of the service. Handlers read straight
// from the database with raw SQL and return flat read models; they never load
// aggregates and never write.
package queries
