package consumer

// Consumer is the domain entity for the public-facing account.
type Consumer struct {
	ID          string
	Name        string
	PhoneNumber string
	Password    string
}
