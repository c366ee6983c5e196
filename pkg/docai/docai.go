// Package docai delivers page tokens from Google Document AI.
//
// It is the input collaborator of the layout engine: it sends a PDF to a
// Document AI OCR processor (or loads a previously saved API response) and
// flattens the proto into plain per-page token lists — text plus bounding
// box origin — which is all the engine consumes. No hierarchy, language or
// confidence data survives the conversion; the engine re-derives structure
// from coordinates alone.
//
// Main Functions:
//
// - ProcessDocument: sends a PDF to Document AI and returns the raw proto
// - TokenPages: flattens a Document proto into per-page token lists
// - DocumentFromJSON: loads a saved protojson API response
// - ToJSON: debug dump of the raw API response
//
// Usage Requirements:
//
// - Google Cloud project with the Document AI API enabled
// - An OCR processor
// - Authentication via the GOOGLE_APPLICATION_CREDENTIALS environment variable
package docai

// Config identifies the Document AI processor to call.
type Config struct {
	ProjectID   string // Google Cloud project id
	Location    string // Processor location, e.g. "us" or "eu"
	ProcessorID string // Document AI processor id
}
