package api

import (
	"math/rand"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// generateInvoiceNumber creates a short human-friendly invoice number like
// "INV-7K2QX9AB" when the client did not supply one.
func generateInvoiceNumber(prefix string) string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return prefix + "-" + string(b)
}
