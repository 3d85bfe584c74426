package util

// Envelope is the JSON response wrapper the dev server uses.
type Envelope map[string]any

func Error(message string) Envelope {
	return Envelope{"message": message}
}

func Message(text string) Envelope {
	return Envelope{"message": text}
}
