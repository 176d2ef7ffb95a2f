package api

type SpeechRequest struct {
	Question string `json:"question"`
}

// Coupon is the JSON form of a speech-to-text result. Both image and text
// results are base64 encoded.
type Coupon struct {
	MimeType string `json:"mimeType"`
	Base64   string `json:"base64"`
}
