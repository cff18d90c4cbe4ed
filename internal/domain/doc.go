// Package domain defines the core business entities of the personal-finance
// backend and their validation rules. Entities are plain value holders: they
// carry no persistence or hashing behavior, and relationships between them are
// expressed only as foreign-key identifiers.
package domain
