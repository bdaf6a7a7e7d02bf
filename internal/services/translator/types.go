package translator

import "context"

// Translation is the result of one provider call
type Translation struct {
	// Text is the translated English text. May be empty when the provider
	// recognizes nothing in the chunk.
	Text string
	// Confidence is derived from segment log probabilities when the provider
	// returns them, nil otherwise.
	Confidence *float64
	// Duration is the audio duration in seconds as reported by the provider.
	Duration float64
}

// Translator translates one audio chunk into English text
type Translator interface {
	Translate(ctx context.Context, audio []byte, filename string) (*Translation, error)
}
