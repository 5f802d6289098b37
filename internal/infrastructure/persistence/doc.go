// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over SQLite or PostgreSQL to store users,
// houses, courses, enrollments and login sessions. Driver errors are
// translated to the sentinel errors of the domain packages.
package persistence
