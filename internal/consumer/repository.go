package consumer

// Repository defines the data-access contract.
// Service depends ONLY on this interface.
type Repository interface {
	Save(c *Consumer) error
	ExistsByName(name string) (bool, error)
	FindByName(name string) (*Consumer, error)
}
