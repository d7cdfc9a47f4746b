package email

type Message struct {
	// To defaults to the configured notification address when empty.
	To       []string
	Subject  string
	TextBody string
	// Headers are extra headers such as Reply-To; blank keys or values are skipped.
	Headers  map[string]string
}
