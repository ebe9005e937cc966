package roster

// Person represents one individual tracked across the video corpus.
// Probability starts at 0 for everyone and is only written by the
// propagation pass; Age is informational and never feeds the model.
type Person struct {
	Name        string
	ID          uint64
	Age         float64
	Probability float64
}
