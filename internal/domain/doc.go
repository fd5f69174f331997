// Package domain defines the plain data types shared across the app.
// It contains values only; the numeric work lives in internal/stats.
package domain
