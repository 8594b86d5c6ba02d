// Package common holds small helpers shared across the categorizer: batch
// identifiers and CSV input/output.
package common

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateBatchID generates a unique identifier for a processing batch: a
// sortable timestamp prefix plus a random suffix.
func GenerateBatchID() string {
	return fmt.Sprintf("%s-%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
}
