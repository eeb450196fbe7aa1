package repository

import (
	"os"
	"strconv"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// floatToString renders a number the way DynamoDB expects it in an
// AttributeValueMemberN: shortest exact decimal form.
func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
