package consumer

import (
	"errors"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	consumers map[string]*Consumer
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		consumers: make(map[string]*Consumer),
	}
}

func (r *InMemoryRepository) Save(c *Consumer) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	r.consumers[c.Name] = c
	return nil
}

func (r *InMemoryRepository) ExistsByName(name string) (bool, error) {
	_, exists := r.consumers[name]
	return exists, nil
}

func (r *InMemoryRepository) FindByName(name string) (*Consumer, error) {
	c, ok := r.consumers[name]
	if !ok {
		return nil, errors.New("consumer not found")
	}
	return c, nil
}
