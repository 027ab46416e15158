package repository

import "os"

// getenvDefault resolves the per-repository table name overrides
// (PAYMENT_INTENTS_TABLE, BOOKINGS_TABLE, ORDERS_TABLE, SUBSCRIPTIONS_TABLE).
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
