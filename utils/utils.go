package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateReceiptID generates a receipt id for gateway orders
func GenerateReceiptID() string {
	return "rcpt_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:20]
}

// GenerateCertificateNumber generates a unique certificate number
func GenerateCertificateNumber() string {
	return fmt.Sprintf("CERT-%s-%s", time.Now().Format("200601"), strings.ToUpper(uuid.NewString()[:8]))
}

// CompletionPercentage returns the integer percentage of completed lessons
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
