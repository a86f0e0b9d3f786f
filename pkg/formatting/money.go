package formatting

import "fmt"

// Ringgit renders an amount as Malaysian Ringgit with two decimal places.
func Ringgit(amount float64) string {
	return fmt.Sprintf("RM %.2f", amount)
}
