// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// to maintain Clean Architecture principles. The admin interface is derived from
// their struct tags, so column sizes and relations are declared here.
package models
