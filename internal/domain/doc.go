// Package domain defines the error kinds and small shared types used by the
// fraction and point value types. It holds no behaviour of its own.
package domain
