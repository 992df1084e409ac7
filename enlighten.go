package enlighten

// SigningKey holds the secret used to sign and verify bearer tokens. It is
// loaded from a JSON key file at start-up.
type SigningKey struct {
	Key string `json:"k"`
}
