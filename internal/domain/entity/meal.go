package entity

// Meal is one dish of a Menu. Meals compare by value.
type Meal struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (m Meal) String() string {
	return m.Name + "\n" + m.Price
}
